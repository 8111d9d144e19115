package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DOXYGEN_ACTION_BINARY", "")
	t.Setenv("DOXYGEN_ACTION_PROPAGATE_EXIT", "")
	t.Setenv("DOXYGEN_ACTION_DEBUG", "")

	assert.Equal(t, Config{Binary: "doxygen"}, Load())
}

func TestLoad_FromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "custom binary",
			env:  map[string]string{"DOXYGEN_ACTION_BINARY": "/opt/doxygen/bin/doxygen"},
			want: Config{Binary: "/opt/doxygen/bin/doxygen"},
		},
		{
			name: "blank binary falls back",
			env:  map[string]string{"DOXYGEN_ACTION_BINARY": "  "},
			want: Config{Binary: "doxygen"},
		},
		{
			name: "propagate exit",
			env:  map[string]string{"DOXYGEN_ACTION_PROPAGATE_EXIT": "1"},
			want: Config{Binary: "doxygen", PropagateExit: true},
		},
		{
			name: "debug",
			env:  map[string]string{"DOXYGEN_ACTION_DEBUG": "true"},
			want: Config{Binary: "doxygen", Debug: true},
		},
		{
			name: "unparseable bool is false",
			env:  map[string]string{"DOXYGEN_ACTION_DEBUG": "maybe"},
			want: Config{Binary: "doxygen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"DOXYGEN_ACTION_BINARY", "DOXYGEN_ACTION_PROPAGATE_EXIT", "DOXYGEN_ACTION_DEBUG"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, Load())
		})
	}
}
