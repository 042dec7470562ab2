package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

func TestRenderPromptInitializer(t *testing.T) {
	prompt, version, err := RenderPrompt(models.SessionKindInitializer, PromptInput{
		ProjectName: "todo-app",
		SpecText:    "Build a todo list with due dates.",
		SandboxKind: models.SandboxNone,
	})
	require.NoError(t, err)

	assert.Equal(t, PromptInitializerV1, version)
	assert.Contains(t, prompt, `"todo-app"`)
	assert.Contains(t, prompt, "Build a todo list with due dates.")
	assert.Contains(t, prompt, "create_epic")
	assert.Contains(t, prompt, "create_test")
	assert.NotContains(t, prompt, "exec tool", "host projects get no sandbox addendum")
}

func TestRenderPromptCodingWithContainer(t *testing.T) {
	prompt, version, err := RenderPrompt(models.SessionKindCoding, PromptInput{
		ProjectName: "todo-app",
		Progress:    "2/10 tasks done, epic 1 in progress",
		SandboxKind: models.SandboxContainer,
	})
	require.NoError(t, err)

	assert.Equal(t, PromptCodingV1, version)
	assert.Contains(t, prompt, "2/10 tasks done")
	assert.Contains(t, prompt, "get_next_task")
	assert.Contains(t, prompt, "update_test_result")
	assert.Contains(t, prompt, "exec tool")
	assert.Contains(t, prompt, "0.0.0.0")
}

func TestRenderPromptCodingEmptyProgress(t *testing.T) {
	prompt, _, err := RenderPrompt(models.SessionKindCoding, PromptInput{ProjectName: "p"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "(no progress summary available)")
}

func TestRenderPromptReview(t *testing.T) {
	prompt, version, err := RenderPrompt(models.SessionKindReview, PromptInput{
		ProjectName:   "todo-app",
		SessionNumber: 7,
		SessionLog:    `{"type":"tool_use","tool_name":"exec"}`,
		SandboxKind:   models.SandboxContainer,
	})
	require.NoError(t, err)

	assert.Equal(t, PromptReviewV1, version)
	assert.Contains(t, prompt, "session 7")
	assert.Contains(t, prompt, `"tool_name":"exec"`)
	assert.Contains(t, prompt, "Rating: N/10")
	assert.NotContains(t, prompt, "0.0.0.0", "review sessions run no commands and get no sandbox addendum")
}

func TestRenderPromptUnknownKind(t *testing.T) {
	_, _, err := RenderPrompt("archaeology", PromptInput{})
	require.Error(t, err)
	assert.Equal(t, services.KindPrecondition, services.KindOf(err))
}

func TestRenderPromptSpecTrimmed(t *testing.T) {
	prompt, _, err := RenderPrompt(models.SessionKindInitializer, PromptInput{
		ProjectName: "p",
		SpecText:    "\n\n  spec body  \n\n",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "--- SPEC START ---\nspec body\n--- SPEC END ---")
}

func TestPromptVersionFor(t *testing.T) {
	assert.Equal(t, PromptInitializerV1, PromptVersionFor(models.SessionKindInitializer))
	assert.Equal(t, PromptCodingV1, PromptVersionFor(models.SessionKindCoding))
	assert.Equal(t, PromptReviewV1, PromptVersionFor(models.SessionKindReview))
	assert.Empty(t, PromptVersionFor("nope"))
}

func TestPromptVersionsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, kind := range []string{models.SessionKindInitializer, models.SessionKindCoding, models.SessionKindReview} {
		_, version, err := RenderPrompt(kind, PromptInput{ProjectName: "p", SpecText: "s", SessionLog: "l"})
		require.NoError(t, err)
		require.False(t, seen[version], "duplicate prompt version %s", version)
		seen[version] = true
		assert.True(t, strings.HasSuffix(version, ".v1"))
	}
}
