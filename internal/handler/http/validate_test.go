package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetFromQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr error
	}{
		{name: "absent defaults to zero", query: "", want: 0},
		{name: "zero", query: "offset=0", want: 0},
		{name: "positive", query: "offset=40", want: 40},
		{name: "negative", query: "offset=-1", wantErr: ErrInvalidOffset},
		{name: "non-numeric", query: "offset=abc", wantErr: ErrInvalidOffset},
		{name: "fractional", query: "offset=1.5", wantErr: ErrInvalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/posts?"+tt.query, nil)

			got, err := offsetFromQuery(req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDFromPath(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr error
	}{
		{name: "valid", value: "7", want: 7},
		{name: "large", value: "9223372036854775807", want: 9223372036854775807},
		{name: "zero", value: "0", wantErr: ErrInvalidPathID},
		{name: "negative", value: "-5", wantErr: ErrInvalidPathID},
		{name: "non-numeric", value: "abc", wantErr: ErrInvalidPathID},
		{name: "empty", value: "", wantErr: ErrInvalidPathID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withChiParam(httptest.NewRequest(http.MethodGet, "/post/"+tt.value, nil), "postID", tt.value)

			got, err := idFromPath(req, "postID")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
