package ssl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidates(t *testing.T) {
	t.Run("stable branches only test pinned versions", func(t *testing.T) {
		got := Candidates(true)

		assert.Equal(t, []string{
			"stock",
			"OPENSSL_VERSION=1.0.2u",
			"OPENSSL_VERSION=1.1.1s",
			"QUICTLS=yes",
		}, got)
	})

	t.Run("development branches append latest markers", func(t *testing.T) {
		got := Candidates(false)

		assert.Equal(t, []string{
			"stock",
			"OPENSSL_VERSION=1.0.2u",
			"OPENSSL_VERSION=1.1.1s",
			"QUICTLS=yes",
			"OPENSSL_VERSION=latest",
			"LIBRESSL_VERSION=latest",
		}, got)
	})
}

func TestFlags(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   []string
	}{
		{
			name:   "stock uses the in-tree library only",
			marker: "stock",
			want:   []string{"USE_OPENSSL=1"},
		},
		{
			name:   "pinned openssl points at the custom prefix",
			marker: "OPENSSL_VERSION=1.1.1s",
			want: []string{
				"USE_OPENSSL=1",
				"SSL_LIB=${HOME}/opt/lib",
				"SSL_INC=${HOME}/opt/include",
			},
		},
		{
			name:   "quictls enables quic",
			marker: "QUICTLS=yes",
			want: []string{
				"USE_OPENSSL=1",
				"USE_QUIC=1",
				"SSL_LIB=${HOME}/opt/lib",
				"SSL_INC=${HOME}/opt/include",
			},
		},
		{
			name:   "boringssl enables quic",
			marker: "BORINGSSL=yes",
			want: []string{
				"USE_OPENSSL=1",
				"USE_QUIC=1",
				"SSL_LIB=${HOME}/opt/lib",
				"SSL_INC=${HOME}/opt/include",
			},
		},
		{
			name:   "libressl markers enable quic",
			marker: "LIBRESSL_VERSION=latest",
			want: []string{
				"USE_OPENSSL=1",
				"USE_QUIC=1",
				"SSL_LIB=${HOME}/opt/lib",
				"SSL_INC=${HOME}/opt/include",
			},
		},
		{
			name:   "resolved libressl version keeps quic",
			marker: "LIBRESSL_VERSION=3.8.2",
			want: []string{
				"USE_OPENSSL=1",
				"USE_QUIC=1",
				"SSL_LIB=${HOME}/opt/lib",
				"SSL_INC=${HOME}/opt/include",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flags(tt.marker))
		})
	}
}

func TestWantsLatest(t *testing.T) {
	assert.True(t, WantsLatestOpenSSL("OPENSSL_VERSION=latest"))
	assert.False(t, WantsLatestOpenSSL("OPENSSL_VERSION=1.1.1s"))
	assert.False(t, WantsLatestOpenSSL("LIBRESSL_VERSION=latest"))

	assert.True(t, WantsLatestLibreSSL("LIBRESSL_VERSION=latest"))
	assert.False(t, WantsLatestLibreSSL("LIBRESSL_VERSION=3.8.2"))
	assert.False(t, WantsLatestLibreSSL("OPENSSL_VERSION=latest"))
}

func TestCleanMarker(t *testing.T) {
	tests := []struct {
		marker string
		want   string
	}{
		{"stock", "stock"},
		{"OPENSSL_VERSION=1.1.1s", "openssl=1.1.1s"},
		{"OPENSSL_VERSION=1.0.2u", "openssl=1.0.2u"},
		{"QUICTLS=yes", "quictls=yes"},
		{"LIBRESSL_VERSION=3.8.2", "libressl=3.8.2"},
		{"OPENSSL_VERSION=failed_to_detect", "openssl=failed_to_detect"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanMarker(tt.marker), "CleanMarker(%q)", tt.marker)
	}
}
