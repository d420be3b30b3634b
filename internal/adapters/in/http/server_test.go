package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/generated/servers"
	"manufacturing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteDomainError_NotFound(t *testing.T) {
	ctx, rec := newEchoContext(t)

	err := writeDomainError(ctx, errs.NewObjectNotFoundError("order", kernel.NewUUID().String()))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}

func TestWriteDomainError_TransitionNotAllowed(t *testing.T) {
	ctx, rec := newEchoContext(t)

	err := writeDomainError(ctx,
		fmt.Errorf("%w: transition from requested to shipped is not allowed", commands.ErrTransitionNotAllowed))

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "not allowed")
}

func TestWriteDomainError_ValidationFailure(t *testing.T) {
	ctx, rec := newEchoContext(t)

	err := writeDomainError(ctx, errs.NewValueIsRequiredError("orderNumber"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWriteDomainError_Unclassified(t *testing.T) {
	ctx, rec := newEchoContext(t)

	err := writeDomainError(ctx, fmt.Errorf("connection reset"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatusChangeResponse_OmitsEmptyOptionals(t *testing.T) {
	record := queries.StatusChangeResponse{
		ID:         kernel.NewUUID(),
		EntityType: "order",
		EntityID:   kernel.NewUUID(),
		ToStatus:   "requested",
		ChangedAt:  time.Now(),
	}

	change := statusChangeResponse(record)

	assert.Nil(t, change.FromStatus)
	assert.Nil(t, change.ChangedBy)
	assert.Nil(t, change.Reason)
	assert.Nil(t, change.Metadata)
	assert.Equal(t, "requested", change.ToStatus)
}

func TestStatusChangeResponse_CarriesOptionals(t *testing.T) {
	record := queries.StatusChangeResponse{
		ID:         kernel.NewUUID(),
		EntityType: "order",
		EntityID:   kernel.NewUUID(),
		FromStatus: "requested",
		ToStatus:   "quoted",
		ChangedAt:  time.Now(),
		ChangedBy:  "sales",
		Reason:     "quotation issued",
		Metadata:   map[string]string{"quotation_id": kernel.NewUUID().String()},
	}

	change := statusChangeResponse(record)

	require.NotNil(t, change.FromStatus)
	assert.Equal(t, "requested", *change.FromStatus)
	require.NotNil(t, change.ChangedBy)
	assert.Equal(t, "sales", *change.ChangedBy)
	require.NotNil(t, change.Metadata)
	assert.Contains(t, *change.Metadata, "quotation_id")
}
