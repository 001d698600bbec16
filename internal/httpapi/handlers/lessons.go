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
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

type LessonRequest struct {
	InstructorID string `json:"instructorId"`
	Title        string `json:"title"`
	Content      string `json:"content"`
}

type QuestionRequest struct {
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
}

type QuizRequest struct {
	InstructorID      string            `json:"instructorId"`
	Questions         []QuestionRequest `json:"questions"`
	PassingPercentage int               `json:"passingPercentage"`
	MaxAttempts       int               `json:"maxAttempts"`
}

type ResourcesRequest struct {
	InstructorID string   `json:"instructorId"`
	Resources    []string `json:"resources"`
}

type QuizAttemptRequest struct {
	StudentID int   `json:"studentId"`
	Answers   []int `json:"answers"`
}

func (h *Handlers) AddLesson(c *gin.Context) {
	var req LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	lesson, err := h.courses().AddLesson(c.Request.Context(), actorID(c, req.InstructorID),
		c.Param("courseId"), req.Title, req.Content)
	if err != nil {
		writeError(c, err, "failed to add lesson")
		return
	}
	c.JSON(http.StatusCreated, lesson)
}

func (h *Handlers) EditLesson(c *gin.Context) {
	var req LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	lesson, err := h.courses().EditLesson(c.Request.Context(), actorID(c, req.InstructorID),
		c.Param("courseId"), c.Param("lessonId"), req.Title, req.Content)
	if err != nil {
		writeError(c, err, "failed to edit lesson")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *Handlers) DeleteLesson(c *gin.Context) {
	err := h.courses().DeleteLesson(c.Request.Context(), actorID(c, c.Query("instructorId")),
		c.Param("courseId"), c.Param("lessonId"))
	if err != nil {
		writeError(c, err, "failed to delete lesson")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetLessonQuiz replaces the lesson quiz. An empty question list removes it.
func (h *Handlers) SetLessonQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	var quiz *types.Quiz
	if len(req.Questions) > 0 {
		quiz = &types.Quiz{
			Questions:         make([]types.Question, 0, len(req.Questions)),
			PassingPercentage: req.PassingPercentage,
			MaxAttempts:       req.MaxAttempts,
		}
		for _, q := range req.Questions {
			quiz.Questions = append(quiz.Questions, types.Question(q))
		}
	}

	lesson, err := h.courses().SetLessonQuiz(c.Request.Context(), actorID(c, req.InstructorID),
		c.Param("courseId"), c.Param("lessonId"), quiz)
	if err != nil {
		writeError(c, err, "failed to set lesson quiz")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *Handlers) SetLessonResources(c *gin.Context) {
	var req ResourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	lesson, err := h.courses().SetLessonResources(c.Request.Context(), actorID(c, req.InstructorID),
		c.Param("courseId"), c.Param("lessonId"), req.Resources)
	if err != nil {
		writeError(c, err, "failed to set lesson resources")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *Handlers) SubmitQuizAttempt(c *gin.Context) {
	var req QuizAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	studentID, err := strconv.Atoi(actorID(c, strconv.Itoa(req.StudentID)))
	if err != nil || studentID <= 0 {
		badRequest(c, "studentId must be a positive integer")
		return
	}

	attempt, err := h.courses().SubmitQuizAttempt(c.Request.Context(), studentID,
		c.Param("courseId"), c.Param("lessonId"), req.Answers)
	if err != nil {
		writeError(c, err, "failed to submit quiz attempt")
		return
	}
	c.JSON(http.StatusCreated, attempt)
}
