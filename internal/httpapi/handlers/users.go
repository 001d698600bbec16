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
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse wraps a user with its role. Password hashes are never serialized.
type UserResponse struct {
	Role types.Role `json:"role"`
	User types.User `json:"user"`
}

type CompletionResponse struct {
	StudentID int    `json:"studentId"`
	CourseID  string `json:"courseId"`
	Completed bool   `json:"completed"`
}

func (h *Handlers) ListUsers(c *gin.Context) {
	all := h.users().GetAll(c.Request.Context())
	response := make([]UserResponse, 0, len(all))
	for _, u := range all {
		response = append(response, UserResponse{Role: u.Role(), User: u})
	}
	c.JSON(http.StatusOK, response)
}

func (h *Handlers) GetUser(c *gin.Context) {
	id, ok := intParam(c, "userId")
	if !ok {
		return
	}
	u, found := h.users().GetByID(c.Request.Context(), id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, UserResponse{Role: u.Role(), User: u})
}

// CreateUser registers a user with the next free id. Emails are unique
// case-insensitively.
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	role, err := types.ParseRole(req.Role)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	if h.users().ExistsEmail(ctx, req.Email) {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	params := types.AccountParams{
		UserID:   h.users().NextUserID(ctx),
		Username: req.Username,
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}
	var u types.User
	switch role {
	case types.RoleStudent:
		u, err = types.NewStudent(params)
	case types.RoleInstructor:
		u, err = types.NewInstructor(params)
	default:
		u, err = types.NewAdmin(params)
	}
	if err != nil {
		writeError(c, err, "failed to create user")
		return
	}

	if err := h.users().SaveOrUpdate(ctx, u); err != nil {
		writeError(c, err, "failed to create user")
		return
	}
	c.JSON(http.StatusCreated, UserResponse{Role: u.Role(), User: u})
}

func (h *Handlers) GetCertificates(c *gin.Context) {
	id, ok := intParam(c, "userId")
	if !ok {
		return
	}
	st, found := h.users().GetStudentByID(c.Request.Context(), id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	c.JSON(http.StatusOK, st.Certificates)
}

func (h *Handlers) IssueCertificate(c *gin.Context) {
	id, ok := intParam(c, "userId")
	if !ok {
		return
	}
	cert, err := h.courses().IssueCertificate(c.Request.Context(), id, c.Param("courseId"))
	if err != nil {
		writeError(c, err, "failed to issue certificate")
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *Handlers) GetCompletion(c *gin.Context) {
	id, ok := intParam(c, "userId")
	if !ok {
		return
	}
	courseID := c.Param("courseId")
	done, err := h.courses().IsCourseCompleted(c.Request.Context(), id, courseID)
	if err != nil {
		writeError(c, err, "failed to check course completion")
		return
	}
	c.JSON(http.StatusOK, CompletionResponse{StudentID: id, CourseID: courseID, Completed: done})
}

func (h *Handlers) RepairBackReferences(c *gin.Context) {
	report, err := h.store.RepairBackReferences(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to repair back-references")
		return
	}
	c.JSON(http.StatusOK, report)
}
