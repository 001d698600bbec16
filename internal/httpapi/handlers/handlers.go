/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/coursenaut/internal/httpapi/middleware"
	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

type Handlers struct {
	config *config.AppConfig
	store  store.StoreInterface
}

func NewHandlers(cfg *config.AppConfig, dataStore store.StoreInterface) *Handlers {
	return &Handlers{
		config: cfg,
		store:  dataStore,
	}
}

func (h *Handlers) courses() store.CourseStoreInterface { return h.store.GetCourseStore() }
func (h *Handlers) users() store.UserStoreInterface { return h.store.GetUserStore() }

func (h *Handlers) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": h.config.App.Name + "-api",
		"version": h.config.App.Version,
		"status":  "running",
	})
}

// statusFor maps store and domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, store.ErrInvalidArgument), errors.Is(err, types.ErrInvalidAccount):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrInvalidTransition), errors.Is(err, store.ErrAttemptsExhausted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error, msg string) {
	status := statusFor(err)
	log := logger.Logger(c.Request.Context()).WithError(err).WithField("path", c.FullPath())
	if status == http.StatusInternalServerError {
		log.Error(msg)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	log.Debug(msg)
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// actorID returns the authenticated user id when the users auth mode set
// one, otherwise the id supplied by the caller.
func actorID(c *gin.Context, supplied string) string {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(int); ok {
			return strconv.Itoa(id)
		}
	}
	return supplied
}

func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		badRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
