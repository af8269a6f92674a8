package handlers

import (
	"net/http"
	"time"

	"careerconnect/internal/app"
	"careerconnect/internal/common"
	"careerconnect/internal/http/middleware"
	"careerconnect/internal/http/response"
)

type ForumHandler struct {
	forum   *app.ForumService
	limiter middleware.Limiter
}

func NewForumHandler(forum *app.ForumService, limiter middleware.Limiter) *ForumHandler {
	return &ForumHandler{forum: forum, limiter: limiter}
}

func (h *ForumHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.forum.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type askRequest struct {
	Title      string `json:"title" validate:"required"`
	Body       string `json:"body" validate:"required"`
	AuthorName string `json:"author_name"`
}

func (h *ForumHandler) Ask(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if h.limiter != nil && !h.limiter.Allow("forum:"+authorID.String(), 10, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "forum post rate limit exceeded", nil))
		return
	}
	var req askRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.forum.Ask(r.Context(), authorID, req.AuthorName, req.Title, req.Body)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

type replyRequest struct {
	Text       string `json:"text" validate:"required"`
	AuthorName string `json:"author_name"`
}

func (h *ForumHandler) Reply(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	questionID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req replyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.forum.Reply(r.Context(), questionID, authorID, req.AuthorName, req.Text)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, updated)
}

func (h *ForumHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	questionID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.forum.Upvote(r.Context(), questionID, userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
