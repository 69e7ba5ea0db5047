package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringerValue struct{}

func (stringerValue) String() string { return "stringer message" }

// TestMessageOf тестирует извлечение сообщения из произвольных ошибок
func TestMessageOf(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{
			name: "error value",
			in:   errors.New("bucket rejected the object"),
			want: "bucket rejected the object",
		},
		{
			name: "raw string",
			in:   "network down",
			want: "network down",
		},
		{
			name: "stringer",
			in:   stringerValue{},
			want: "stringer message",
		},
		{
			name: "struct falls back to json",
			in:   struct{ Code int }{Code: 502},
			want: `{"Code":502}`,
		},
		{
			name: "nil",
			in:   nil,
			want: UnknownErrorMessage,
		},
		{
			name: "empty string",
			in:   "",
			want: UnknownErrorMessage,
		},
		{
			name: "unserializable value",
			in:   make(chan int),
			want: UnknownErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageOf(tt.in))
		})
	}
}
