// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for inspecting branches and worktree status and
// for staging, committing, pulling, and pushing changes through the shell
// executor in a way the update service can stub out in tests.
package gitrepo
