/*
Copyright 2025 Lendflow Finance Authors.

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
package api

import (
	"errors"
	"net/http"

	model2 "github.com/lendflow-finance/lendflow/api/model"

	"github.com/gin-gonic/gin"
	"github.com/lendflow-finance/lendflow"
	"github.com/lendflow-finance/lendflow/model"
)

// respondErr maps service errors onto HTTP responses: missing sessions to
// 404, refused guards to 422 with the aggregated violations, everything
// else to 400.
func respondErr(c *gin.Context, err error) {
	if errors.Is(err, lendflow.ErrApplicationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	var gerr *lendflow.GuardError
	if errors.As(err, &gerr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             gerr.Message,
			"step":              gerr.Step.String(),
			"field_errors":      gerr.FieldErrors,
			"missing_documents": gerr.MissingDocuments,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func applicationID(c *gin.Context) (string, bool) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return "", false
	}
	return id, true
}

func (a Api) CreateApplication(c *gin.Context) {
	resp, err := a.lendflow.CreateApplication(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (a Api) GetApplication(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	resp, err := a.lendflow.GetApplication(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a Api) ResetApplication(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	if err := a.lendflow.ResetApplication(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "application reset"})
}

func (a Api) ApplySelections(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	var req model2.UpdateSelections
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.ValidateUpdateSelections(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.lendflow.ApplySelections(c.Request.Context(), id, req.ToSelectionUpdate())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a Api) UpdateFields(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	var req model2.UpdateFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.ValidateUpdateFields(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.lendflow.UpdateFields(c.Request.Context(), id, req.Fields)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a Api) GetVisibility(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	resp, err := a.lendflow.Visibility(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a Api) Advance(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	resp, err := a.lendflow.Advance(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a Api) Retreat(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	resp, err := a.lendflow.Retreat(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a Api) JumpTo(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	var req model2.JumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.ValidateJumpRequest(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.lendflow.JumpTo(c.Request.Context(), id, model.WizardStep(*req.Step))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a Api) GetOffer(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	resp, err := a.lendflow.GetOffer(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a Api) GetLoanSummary(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	summary, err := a.lendflow.LoanSummary(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.String(http.StatusOK, summary)
}

func (a Api) AcceptLoan(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	resp, err := a.lendflow.AcceptLoan(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (a Api) VerifyDocument(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	doc, passed := c.Params.Get("doc")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document type is required. pass it in the route /:doc"})
		return
	}

	var req model2.VerifyDocument
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.ValidateVerifyDocument(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	uploaded, outcome, err := a.lendflow.VerifyDocument(c.Request.Context(), id, req.ToSubmission(model.DocumentType(doc)))
	if err != nil {
		var serr *model.SubmissionError
		if errors.As(err, &serr) {
			c.JSON(http.StatusUnprocessableEntity, serr)
			return
		}
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcome": outcome, "document": uploaded})
}

func (a Api) VerifyBankAccount(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	var req model2.VerifyBankAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.ValidateVerifyBankAccount(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	account, err := a.lendflow.VerifyBankAccount(c.Request.Context(), id, req.ToBankAccountRequest())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (a Api) SendOTP(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	var req model2.SendOTP
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.ValidateSendOTP(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	status, err := a.lendflow.SendOTP(c.Request.Context(), id, model.OTPPurpose(req.Purpose))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (a Api) ResendOTP(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	status, err := a.lendflow.ResendOTP(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (a Api) VerifyOTP(c *gin.Context) {
	id, passed := applicationID(c)
	if !passed {
		return
	}
	var req model2.VerifyOTP
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	if err := req.ValidateVerifyOTP(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.lendflow.VerifyOTP(c.Request.Context(), id, req.Code)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
