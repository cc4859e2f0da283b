package cmd

import (
	"strings"
	"testing"

	"quillpad/app/services"

	"github.com/stretchr/testify/assert"
)

func TestComments(t *testing.T) {
	env := newTestEnv(t)
	createPost(env, "Post", "2024-01-01", "")

	assert.Equal(t, "added comment 1 by Anonymous\n", env.run("comment", "add", "1", "--text", "first"))
	assert.Equal(t, "added comment 2 by Jane\n", env.run("comment", "add", "1", "--text", "second", "--author", " Jane "))

	out := env.run("comment", "list", "1")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "[2] Jane")
		assert.Contains(t, lines[1], "[1] Anonymous")
	}
	assert.Contains(t, env.run("post", "show", "1"), "Comments (2):")

	env.run("comment", "edit", "1", "2", "--text", "edited", "--author", "Jane")
	assert.Contains(t, env.run("comment", "list", "1"), "[2] Jane on")

	_, err := env.runErr("comment", "add", "1", "--text", " ")
	assert.True(t, services.IsValidation(err))

	_, err = env.runErr("comment", "add", "9", "--text", "orphan")
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.Equal(t, "deleted comment 1\n", env.run("comment", "delete", "1"))
	env.run("post", "delete", "1")
	_, err = env.runErr("comment", "delete", "2")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCommentListEmpty(t *testing.T) {
	env := newTestEnv(t)
	createPost(env, "Post", "2024-01-01", "")
	assert.Equal(t, "no comments\n", env.run("comment", "list", "1"))
}

func TestCommentShow(t *testing.T) {
	env := newTestEnv(t)
	createPost(env, "Post", "2024-01-01", "")
	env.run("comment", "add", "1", "--text", "  hello there  ", "--author", "Jane")

	out := env.run("comment", "show", "1")
	assert.Contains(t, out, "Comment 1 on post 1\n")
	assert.Contains(t, out, "By Jane on ")
	assert.True(t, strings.HasSuffix(out, "\n\nhello there\n"))

	_, err := env.runErr("comment", "show", "2")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCommentAddCountsSubmittedText(t *testing.T) {
	env := newTestEnv(t)
	createPost(env, "Post", "2024-01-01", "")

	_, err := env.runErr("comment", "add", "1", "--text", strings.Repeat("x", 5000)+"  ")
	assert.True(t, services.IsValidation(err))
	env.run("comment", "add", "1", "--text", strings.Repeat("x", 5000))
}
