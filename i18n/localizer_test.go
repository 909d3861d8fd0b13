package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalizer_RoomLabel(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en", want: "Room 3"},
		{locale: "en-GB", want: "Room 3"},
		{locale: "fr", want: "Salle 3"},
		{locale: "fr-CA", want: "Salle 3"},
		{locale: "de-DE", want: "Raum 3"},
		{locale: "es", want: "Sala 3"},
		{locale: "ja", want: "Room 3"},
		{locale: "", want: "Room 3"},
		{locale: "not a locale", want: "Room 3"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			require.Equal(t, tt.want, NewLocalizer(tt.locale).RoomLabel(3))
		})
	}
}
