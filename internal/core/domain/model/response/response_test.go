package response_test

import (
	"testing"
	"time"

	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/response"
	"relomarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func mustPrice(t *testing.T, amount int64) *kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return &price
}

func newAcceptResponse(t *testing.T) *response.VendorResponse {
	t.Helper()
	r, err := response.NewVendorResponse(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		response.TypeAccept, nil, mustPrice(t, 200000), "can start monday", submittedAt,
	)
	require.NoError(t, err)
	return r
}

func TestNewVendorResponse(t *testing.T) {
	t.Run("records accept with original price snapshot", func(t *testing.T) {
		r := newAcceptResponse(t)

		assert.Equal(t, response.TypeAccept, r.ResponseType())
		assert.Nil(t, r.ProposedPrice())
		require.NotNil(t, r.OriginalPrice())
		assert.Equal(t, int64(200000), r.OriginalPrice().Amount())
		assert.Equal(t, "can start monday", r.Message())
		assert.Equal(t, submittedAt, r.SubmittedAt())
		assert.False(t, r.IsReviewed())
		assert.False(t, r.IsApproved())
		assert.Nil(t, r.ReviewedAt())
		require.NoError(t, r.Validate())
	})

	t.Run("records price_update with proposed price", func(t *testing.T) {
		r, err := response.NewVendorResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			response.TypePriceUpdate, mustPrice(t, 250000), mustPrice(t, 200000), "", submittedAt,
		)

		require.NoError(t, err)
		require.NotNil(t, r.ProposedPrice())
		assert.Equal(t, int64(250000), r.ProposedPrice().Amount())
	})

	t.Run("price_update requires proposed price", func(t *testing.T) {
		_, err := response.NewVendorResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			response.TypePriceUpdate, nil, mustPrice(t, 200000), "", submittedAt,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("accept must not carry proposed price", func(t *testing.T) {
		_, err := response.NewVendorResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			response.TypeAccept, mustPrice(t, 250000), nil, "", submittedAt,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("original price may be absent", func(t *testing.T) {
		r, err := response.NewVendorResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			response.TypeReject, nil, nil, "", submittedAt,
		)

		require.NoError(t, err)
		assert.Nil(t, r.OriginalPrice())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := response.NewVendorResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			response.TypeUnknown, nil, nil, "", submittedAt,
		)

		require.Error(t, err)
	})

	t.Run("rejects zero submission time", func(t *testing.T) {
		_, err := response.NewVendorResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			response.TypeAccept, nil, nil, "", time.Time{},
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreVendorResponse(t *testing.T) {
	reviewedAt := submittedAt.Add(2 * time.Hour)
	approved := true

	t.Run("restores reviewed response", func(t *testing.T) {
		r, err := response.RestoreVendorResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			response.TypeAccept, nil, mustPrice(t, 200000), "", submittedAt,
			&approved, "looks good", &reviewedAt,
		)

		require.NoError(t, err)
		assert.True(t, r.IsReviewed())
		assert.True(t, r.IsApproved())
		assert.Equal(t, "looks good", r.AdminResponse())
		require.NotNil(t, r.ReviewedAt())
		assert.Equal(t, reviewedAt, *r.ReviewedAt())
	})

	t.Run("verdict without review time is rejected", func(t *testing.T) {
		_, err := response.RestoreVendorResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			response.TypeAccept, nil, nil, "", submittedAt,
			&approved, "", nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVendorResponse_Review(t *testing.T) {
	reviewedAt := submittedAt.Add(time.Hour)

	t.Run("approval marks reviewed", func(t *testing.T) {
		r := newAcceptResponse(t)

		require.NoError(t, r.Review(true, "assigning you", reviewedAt))

		assert.True(t, r.IsReviewed())
		assert.True(t, r.IsApproved())
		assert.Equal(t, "assigning you", r.AdminResponse())
	})

	t.Run("rejection also marks reviewed", func(t *testing.T) {
		r := newAcceptResponse(t)

		require.NoError(t, r.Review(false, "went with another vendor", reviewedAt))

		assert.True(t, r.IsReviewed())
		assert.False(t, r.IsApproved())
	})

	t.Run("second review fails", func(t *testing.T) {
		r := newAcceptResponse(t)
		require.NoError(t, r.Review(true, "", reviewedAt))

		err := r.Review(false, "", reviewedAt.Add(time.Minute))

		require.ErrorIs(t, err, response.ErrAlreadyReviewed)
		assert.True(t, r.IsApproved())
	})

	t.Run("zero review time is rejected", func(t *testing.T) {
		r := newAcceptResponse(t)

		require.ErrorIs(t, r.Review(true, "", time.Time{}), errs.ErrValueIsRequired)
		assert.False(t, r.IsReviewed())
	})
}

func TestVendorResponse_LeadsToAssignment(t *testing.T) {
	cases := map[response.Type]bool{
		response.TypeAccept:      true,
		response.TypePriceUpdate: true,
		response.TypeReject:      false,
	}

	for responseType, want := range cases {
		var proposed *kernel.Price
		if responseType == response.TypePriceUpdate {
			proposed = mustPrice(t, 300000)
		}

		r, err := response.NewVendorResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			responseType, proposed, nil, "", submittedAt,
		)
		require.NoError(t, err)
		assert.Equal(t, want, r.LeadsToAssignment(), responseType.String())
	}
}

func TestTypeFromString(t *testing.T) {
	for name, want := range map[string]response.Type{
		"accept":       response.TypeAccept,
		"reject":       response.TypeReject,
		"price_update": response.TypePriceUpdate,
	} {
		parsed, err := response.TypeFromString(name)
		require.NoError(t, err)
		assert.Equal(t, want, parsed)
		assert.Equal(t, name, parsed.String())
	}

	_, err := response.TypeFromString("counter")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
