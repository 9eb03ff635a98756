package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mizuki-dev/kanban-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestBoardHandler_CreateBoard(t *testing.T) {
	env := setupTestEnv(t)
	alice, token := env.createUser(t, "alice")

	w := env.doJSON(t, http.MethodPost, "/api/boards", token, map[string]interface{}{
		"title":  "Sprint",
		"public": false,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var board dto.BoardDTO
	decodeJSON(t, w, &board)
	require.Equal(t, "Sprint", board.Title)
	require.False(t, board.Public)
	require.Equal(t, alice.ID, board.OwnerID)

	// The owner is a collaborator from the moment the board exists.
	member, err := env.boardService.IsCollaborator(board.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, member)
}

func TestBoardHandler_CreateBoard_RequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/boards", "", map[string]interface{}{
		"title": "Sprint",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBoardHandler_CreateBoard_TitleTooLong(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "alice")

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}

	w := env.doJSON(t, http.MethodPost, "/api/boards", token, map[string]interface{}{
		"title": string(long),
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBoardHandler_PrivateBoardMasking(t *testing.T) {
	env := setupTestEnv(t)
	alice, aliceToken := env.createUser(t, "alice")

	board, err := env.boardService.CreateBoard("Secret", false, alice)
	require.NoError(t, err)

	path := fmt.Sprintf("/api/boards/%d", board.ID)

	// Anonymous callers get 404, never 403.
	anon := env.doJSON(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusNotFound, anon.Code)

	// So do authenticated non-collaborators.
	_, bobToken := env.createUser(t, "bob")
	asBob := env.doJSON(t, http.MethodGet, path, bobToken, nil)
	require.Equal(t, http.StatusNotFound, asBob.Code)

	// The collaborator view and the roster are gated identically.
	usersAsBob := env.doJSON(t, http.MethodGet, path+"/users", bobToken, nil)
	require.Equal(t, http.StatusNotFound, usersAsBob.Code)

	asAlice := env.doJSON(t, http.MethodGet, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, asAlice.Code)
}

func TestBoardHandler_PublicBoardVisibleToAll(t *testing.T) {
	env := setupTestEnv(t)
	alice, _ := env.createUser(t, "alice")
	_, bobToken := env.createUser(t, "bob")

	board, err := env.boardService.CreateBoard("Open", true, alice)
	require.NoError(t, err)

	// Bob sees it in the public listing.
	listing := env.doJSON(t, http.MethodGet, "/api/boards", bobToken, nil)
	require.Equal(t, http.StatusOK, listing.Code)

	var boards []dto.BoardDTO
	decodeJSON(t, listing, &boards)
	require.Len(t, boards, 1)
	require.Equal(t, board.ID, boards[0].ID)

	// The roster shows only alice.
	roster := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/boards/%d/users", board.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, roster.Code)

	var users []dto.UserPublicDTO
	decodeJSON(t, roster, &users)
	require.Len(t, users, 1)
	require.Equal(t, "alice", users[0].Username)
}

func TestBoardHandler_PublicBoardMutationStillGated(t *testing.T) {
	env := setupTestEnv(t)
	alice, _ := env.createUser(t, "alice")
	_, bobToken := env.createUser(t, "bob")

	board, err := env.boardService.CreateBoard("Open", true, alice)
	require.NoError(t, err)

	// Public grants reads, not writes: bob cannot create a list.
	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/boards/%d/lists", board.ID), bobToken, map[string]string{
		"title": "Todo",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoardHandler_ListPublicBoards_LimitZeroUsesDefault(t *testing.T) {
	env := setupTestEnv(t)
	alice, _ := env.createUser(t, "alice")

	for i := 0; i < 30; i++ {
		_, err := env.boardService.CreateBoard(fmt.Sprintf("Board %d", i), true, alice)
		require.NoError(t, err)
	}

	zero := env.doJSON(t, http.MethodGet, "/api/boards?limit=0", "", nil)
	require.Equal(t, http.StatusOK, zero.Code)

	omitted := env.doJSON(t, http.MethodGet, "/api/boards", "", nil)
	require.Equal(t, http.StatusOK, omitted.Code)

	var zeroBoards, omittedBoards []dto.BoardDTO
	decodeJSON(t, zero, &zeroBoards)
	decodeJSON(t, omitted, &omittedBoards)

	require.Len(t, zeroBoards, 25)
	require.Equal(t, omittedBoards, zeroBoards)
}

func TestBoardHandler_ListPublicBoards_Pagination(t *testing.T) {
	env := setupTestEnv(t)
	alice, _ := env.createUser(t, "alice")

	for i := 0; i < 5; i++ {
		_, err := env.boardService.CreateBoard(fmt.Sprintf("Board %d", i), true, alice)
		require.NoError(t, err)
	}

	w := env.doJSON(t, http.MethodGet, "/api/boards?offset=2&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var boards []dto.BoardDTO
	decodeJSON(t, w, &boards)
	require.Len(t, boards, 2)
	require.Equal(t, "Board 2", boards[0].Title)
	require.Equal(t, "Board 3", boards[1].Title)
}

func TestBoardHandler_ListMyBoards(t *testing.T) {
	env := setupTestEnv(t)
	alice, aliceToken := env.createUser(t, "alice")
	bob, _ := env.createUser(t, "bob")

	_, err := env.boardService.CreateBoard("Mine", false, alice)
	require.NoError(t, err)
	_, err = env.boardService.CreateBoard("Theirs", true, bob)
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodGet, "/api/boards/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var boards []dto.BoardDTO
	decodeJSON(t, w, &boards)
	require.Len(t, boards, 1)
	require.Equal(t, "Mine", boards[0].Title)
}
