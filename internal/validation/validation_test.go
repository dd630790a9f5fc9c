package validation

import (
	"net/http"
	"testing"

	"fraud_awareness/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	require.NoError(t, Register())
}

func fieldMessages(t *testing.T, obj any) map[string]string {
	t.Helper()
	err := binding.Validator.ValidateStruct(obj)
	if err == nil {
		return nil
	}
	appErr := FromBindingError(err)
	out := make(map[string]string, len(appErr.Fields))
	for _, fe := range appErr.Fields {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestRegisterRequest_CollectsAllFieldErrors(t *testing.T) {
	setup(t)

	req := model.RegisterRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "abcdef", // long enough but no digit
	}

	msgs := fieldMessages(t, &req)
	assert.Len(t, msgs, 3)
	assert.Equal(t, "Username must be at least 3 characters long", msgs["username"])
	assert.Equal(t, "Please enter a valid email", msgs["email"])
	assert.Equal(t, "Password must contain at least one number", msgs["password"])
}

func TestRegisterRequest_ShortPassword(t *testing.T) {
	setup(t)

	req := model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "a1",
	}

	msgs := fieldMessages(t, &req)
	assert.Equal(t, "Password must be at least 6 characters long", msgs["password"])
}

func TestRegisterRequest_Valid(t *testing.T) {
	setup(t)

	req := model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	}

	assert.Nil(t, fieldMessages(t, &req))
}

func TestSubmitReportRequest_EmptyEvidenceArrayIsAllowed(t *testing.T) {
	setup(t)

	req := model.SubmitReportRequest{
		Title:        "SIM swap attempt",
		Description:  "Received unexpected SIM deactivation SMS from carrier",
		FraudType:    "sms",
		EvidenceURLs: []string{},
	}

	assert.Nil(t, fieldMessages(t, &req))
}

func TestSubmitReportRequest_MissingEvidenceArray(t *testing.T) {
	setup(t)

	req := model.SubmitReportRequest{
		Title:       "SIM swap attempt",
		Description: "Received unexpected SIM deactivation SMS from carrier",
		FraudType:   "sms",
	}

	msgs := fieldMessages(t, &req)
	assert.Equal(t, "Evidence URLs must be an array", msgs["evidenceUrls"])
}

func TestSubmitReportRequest_InvalidFields(t *testing.T) {
	setup(t)

	emptyLocation := ""
	req := model.SubmitReportRequest{
		Title:        "shrt",
		Description:  "too short",
		FraudType:    "email",
		EvidenceURLs: []string{},
		Location:     &emptyLocation,
	}

	msgs := fieldMessages(t, &req)
	assert.Equal(t, "Title must be between 5 and 200 characters", msgs["title"])
	assert.Equal(t, "Description must be at least 20 characters long", msgs["description"])
	assert.Equal(t, "Invalid fraud type", msgs["fraudType"])
	assert.Equal(t, "Location cannot be empty if provided", msgs["location"])
}

func TestUpdateStatusRequest_Rules(t *testing.T) {
	setup(t)

	shortNotes := "too short"
	req := model.UpdateStatusRequest{
		Status:     "archived",
		AdminNotes: &shortNotes,
	}

	msgs := fieldMessages(t, &req)
	assert.Equal(t, "Invalid status", msgs["status"])
	assert.Equal(t, "Admin notes must be at least 10 characters long if provided", msgs["adminNotes"])

	notes := "Confirmed with carrier logs"
	valid := model.UpdateStatusRequest{Status: "verified", AdminNotes: &notes}
	assert.Nil(t, fieldMessages(t, &valid))
}

func TestFromBindingError_MalformedBody(t *testing.T) {
	setup(t)

	appErr := FromBindingError(assert.AnError)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Invalid request body", appErr.Message)
	assert.Empty(t, appErr.Fields)
}
