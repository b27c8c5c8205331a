package main

import (
	"bytes"
	"strings"
	"testing"

	"bizbot/internal/repository"
	"bizbot/internal/usecases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	catalog, err := repository.LoadDefaultCatalog()
	require.NoError(t, err)

	var buf bytes.Buffer
	runDemo(&buf, usecases.NewContentGenerator(catalog, nil), demoIdeas)
	out := buf.String()

	assert.Contains(t, out, "🚀 Business Idea: Coffee Shop")
	assert.Contains(t, out, "🚀 Business Idea: Food Truck")
	assert.Equal(t, len(demoIdeas), strings.Count(out, "... and 6 more comprehensive steps"))
	assert.Equal(t, len(demoIdeas), strings.Count(out, "🏷️ Creative Business Names:"))
}

func TestChatCommand(t *testing.T) {
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"chat", "make", "a", "logo", "--idea", "coffee shop", "--name", "Bean There"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Create a professional logo for 'Bean There', a coffee shop business.")
}

func TestTokenCommandRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"token", "--client", "web"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, usecases.ErrMissingSecret)
}

func TestTokenCommandIssuesVerifiableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "demo-secret")
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"token", "--client", "web"})

	require.NoError(t, cmd.Execute())
	clientID, err := usecases.NewAuthUsecase("demo-secret").ParseToken(strings.TrimSpace(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, "web", clientID)
}
