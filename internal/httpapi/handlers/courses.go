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
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

type CourseRequest struct {
	InstructorID string `json:"instructorId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
}

type CreateCourseResponse struct {
	Course     *types.Course `json:"course"`
	Instructor store.BackRef `json:"instructor"`
}

type EnrollmentRequest struct {
	StudentID string `json:"studentId"`
}

type EnrollmentResponse struct {
	CourseID  string        `json:"courseId"`
	StudentID string        `json:"studentId"`
	Student   store.BackRef `json:"student"`
}

// ListCourses returns approved courses, or every course with ?all=true.
func (h *Handlers) ListCourses(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("all") == "true" {
		c.JSON(http.StatusOK, h.courses().GetAllCourses(ctx))
		return
	}
	c.JSON(http.StatusOK, h.courses().GetVisibleCourses(ctx))
}

func (h *Handlers) GetCourse(c *gin.Context) {
	course, ok := h.courses().GetCourseByID(c.Request.Context(), c.Param("courseId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *Handlers) CreateCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	instructorID := actorID(c, req.InstructorID)
	if strings.TrimSpace(req.Title) == "" || instructorID == "" {
		badRequest(c, "title and instructorId are required")
		return
	}

	course, outcome, err := h.courses().CreateCourse(c.Request.Context(), instructorID, req.Title, req.Description)
	if err != nil {
		writeError(c, err, "failed to create course")
		return
	}
	c.JSON(http.StatusCreated, CreateCourseResponse{Course: course, Instructor: outcome})
}

func (h *Handlers) EditCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	course, err := h.courses().EditCourse(c.Request.Context(), actorID(c, req.InstructorID),
		c.Param("courseId"), req.Title, req.Description)
	if err != nil {
		writeError(c, err, "failed to edit course")
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *Handlers) DeleteCourse(c *gin.Context) {
	result, err := h.courses().DeleteCourse(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		writeError(c, err, "failed to delete course")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handlers) ApproveCourse(c *gin.Context) {
	h.decideCourse(c, h.courses().ApproveCourse)
}

func (h *Handlers) RejectCourse(c *gin.Context) {
	h.decideCourse(c, h.courses().RejectCourse)
}

func (h *Handlers) decideCourse(c *gin.Context, decide func(ctx context.Context, courseID string) (*types.Course, error)) {
	course, err := decide(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		writeError(c, err, "failed to update course status")
		return
	}
	c.JSON(http.StatusOK, course)
}

// GetCourseStudents lists resolved students, or raw ids with ?ids=true.
func (h *Handlers) GetCourseStudents(c *gin.Context) {
	ctx := c.Request.Context()
	courseID := c.Param("courseId")
	if _, ok := h.courses().GetCourseByID(ctx, courseID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	if c.Query("ids") == "true" {
		c.JSON(http.StatusOK, h.courses().GetEnrolledStudentIDs(ctx, courseID))
		return
	}
	c.JSON(http.StatusOK, h.courses().GetEnrolledStudentsForCourse(ctx, courseID))
}

func (h *Handlers) EnrollStudent(c *gin.Context) {
	var req EnrollmentRequest
	_ = c.ShouldBindJSON(&req)
	studentID := actorID(c, req.StudentID)
	if studentID == "" {
		badRequest(c, "studentId is required")
		return
	}

	courseID := c.Param("courseId")
	outcome, err := h.courses().EnrollStudentInCourse(c.Request.Context(), courseID, studentID)
	if err != nil {
		writeError(c, err, "failed to enroll student")
		return
	}
	c.JSON(http.StatusOK, EnrollmentResponse{CourseID: courseID, StudentID: studentID, Student: outcome})
}

func (h *Handlers) UnenrollStudent(c *gin.Context) {
	courseID := c.Param("courseId")
	studentID := actorID(c, c.Param("studentId"))

	outcome, err := h.courses().UnenrollStudentFromCourse(c.Request.Context(), courseID, studentID)
	if err != nil {
		writeError(c, err, "failed to unenroll student")
		return
	}
	c.JSON(http.StatusOK, EnrollmentResponse{CourseID: courseID, StudentID: studentID, Student: outcome})
}
