package insight

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/astro-insight/pkg/errors"
)

func TestCacheKey(t *testing.T) {
	require.Equal(t, "ritika_1995-08-20_en", CacheKey("Ritika", "1995-08-20", "en"))
	require.Equal(t, "mary ann_2000-02-29_hi", CacheKey("Mary Ann", "2000-02-29", "hi"))
}

func TestValidate(t *testing.T) {
	svc := &service{cfg: Config{DefaultLanguage: "en"}}
	valid := Request{Name: "Ritika", BirthDate: "1995-08-20", BirthTime: "14:30", BirthPlace: "Jaipur, India"}

	details, err := svc.validate(valid)
	require.NoError(t, err)
	require.Equal(t, "en", details.language)
	require.Equal(t, 1995, details.born.Year())
	require.Equal(t, 14, details.born.Hour())

	tests := []struct {
		name    string
		mutate  func(r *Request)
		message string
	}{
		{"blank name", func(r *Request) { r.Name = "  " }, "name cannot be empty"},
		{"blank place", func(r *Request) { r.BirthPlace = "" }, "birth_place cannot be empty"},
		{"bad month", func(r *Request) { r.BirthDate = "1999-13-01" }, InvalidDateTimeMessage},
		{"bad day", func(r *Request) { r.BirthDate = "2001-02-29" }, InvalidDateTimeMessage},
		{"bad time", func(r *Request) { r.BirthTime = "25:00" }, InvalidDateTimeMessage},
		{"wrong separator", func(r *Request) { r.BirthDate = "1995/08/20" }, InvalidDateTimeMessage},
		{"missing time", func(r *Request) { r.BirthTime = "" }, InvalidDateTimeMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := svc.validate(req)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
			require.Equal(t, tt.message, apperrors.MessageOf(err))
		})
	}
}
