package composer

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		form          Form
		wantErr       bool
		invalidFields []string
	}{
		{
			name: "Success with empty reference lists",
			form: Form{
				EventName: "Launch Party",
				CompanyID: "co123",
			},
		},
		{
			name: "Success with reference lists",
			form: Form{
				EventName:    "Club Night",
				CompanyID:    "co456",
				TableLayouts: []string{"tl-main-floor"},
				Categories:   []string{"cat-live-music", "cat-private"},
				ClubCardIDs:  []string{"cc-gold"},
				EventGenre:   []string{"gen-techno"},
			},
		},
		{
			name: "Empty event name",
			form: Form{
				CompanyID: "co123",
			},
			wantErr:       true,
			invalidFields: []string{"EventName"},
		},
		{
			name: "Empty company id",
			form: Form{
				EventName: "Launch Party",
			},
			wantErr:       true,
			invalidFields: []string{"CompanyID"},
		},
		{
			name:          "Everything missing",
			form:          Form{},
			wantErr:       true,
			invalidFields: []string{"EventName", "CompanyID"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := New(0, 0)

			event, err := c.Build(tc.form)

			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, event, "no request object may be constructed on validation failure")

				var validateErr validator.ValidationErrors
				require.True(t, errors.As(err, &validateErr))

				for _, field := range tc.invalidFields {
					assert.Contains(t, validateErr.Error(), field)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, event)

			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, tc.form.EventName, event.EventName)
			assert.Equal(t, tc.form.CompanyID, event.CompanyID)
			assert.True(t, event.StartDateTime.Before(event.EndDateTime))

			assert.NotNil(t, event.TableLayouts)
			assert.NotNil(t, event.Categories)
			assert.NotNil(t, event.ClubCardIDs)
			assert.NotNil(t, event.EventGenre)
		})
	}
}

func TestBuildGeneratesFreshID(t *testing.T) {
	t.Parallel()

	c := New(0, 0)
	form := Form{EventName: "Launch Party", CompanyID: "co123"}

	first, err := c.Build(form)
	require.NoError(t, err)

	second, err := c.Build(form)
	require.NoError(t, err)

	assert.NotEqual(t, first.EventID, second.EventID)
}

func TestBuildAppliesOffsets(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	c := New(24*time.Hour, 5*time.Hour)
	c.now = func() time.Time { return now }

	event, err := c.Build(Form{EventName: "Launch Party", CompanyID: "co123"})
	require.NoError(t, err)

	assert.Equal(t, now.Add(24*time.Hour), event.StartDateTime)
	assert.Equal(t, now.Add(29*time.Hour), event.EndDateTime)
}

func TestBuildDefaultOffsets(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	c := New(0, 0)
	c.now = func() time.Time { return now }

	event, err := c.Build(Form{EventName: "Launch Party", CompanyID: "co123"})
	require.NoError(t, err)

	assert.Equal(t, now.Add(DefaultStartOffset), event.StartDateTime)
	assert.Equal(t, event.StartDateTime.Add(DefaultDuration), event.EndDateTime)
}
