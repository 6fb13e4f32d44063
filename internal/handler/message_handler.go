/*
This file provides HTTP handler functions for reading and mutating board messages.
*/
package handler

import (
	"errors"
	"net/http"

	"pinboard/internal/app/message"
	"pinboard/internal/pkg/errs"
	"pinboard/internal/pkg/logx"
	"pinboard/internal/pkg/req"
	"pinboard/internal/pkg/resp"
)

// HandleListMessages serves the full feed, newest first. Reads are public.
func HandleListMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := deps.Messages.ListAll(r.Context())
		if err != nil {
			logx.Error(err, "messages: list failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrStorage))
			return
		}

		resp.RespondSuccess(w, r, messages)
	}
}

type SubmitInput struct {
	Message string `json:"message"`
}

// HandleSubmitMessage appends a new message owned by the current account.
// The author name is snapshotted from the session at submission time.
func HandleSubmitMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := GetSessionFromContext(r)

		var input SubmitInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		body, ok := message.ValidateBody(input.Message)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidInput))
			return
		}

		created, err := deps.Messages.Create(r.Context(), s.Username, body, s.UserID)
		if err != nil {
			logx.Error(err, "submit: failed to create message", "user_id", s.UserID)
			resp.RespondError(w, r, errs.NewError(errs.ErrStorage))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"id": created.ID,
		})
	}
}

type UpdateInput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// HandleUpdateMessage replaces the body of a message the current account owns.
func HandleUpdateMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := GetSessionFromContext(r)

		var input UpdateInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.ID <= 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidInput))
			return
		}

		body, ok := message.ValidateBody(input.Message)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidInput))
			return
		}

		target, err := deps.Messages.GetByID(r.Context(), input.ID)
		if err != nil {
			logx.Error(err, "update: failed to fetch message", "message_id", input.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrStorage))
			return
		}

		if customErr := message.AuthorizeOwner(target, s.UserID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		// The write re-validates existence; the row may have vanished since
		// the ownership check.
		if err := deps.Messages.UpdateBody(r.Context(), input.ID, body); err != nil {
			if errors.Is(err, message.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrMessageNotFound))
				return
			}

			logx.Error(err, "update: failed to update message", "message_id", input.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrStorage))
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}

type DeleteInput struct {
	ID int64 `json:"id"`
}

// HandleDeleteMessage removes a message the current account owns.
func HandleDeleteMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := GetSessionFromContext(r)

		var input DeleteInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.ID <= 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidInput))
			return
		}

		target, err := deps.Messages.GetByID(r.Context(), input.ID)
		if err != nil {
			logx.Error(err, "delete: failed to fetch message", "message_id", input.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrStorage))
			return
		}

		if customErr := message.AuthorizeOwner(target, s.UserID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Messages.DeleteByID(r.Context(), input.ID); err != nil {
			if errors.Is(err, message.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrMessageNotFound))
				return
			}

			logx.Error(err, "delete: failed to delete message", "message_id", input.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrStorage))
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}
