package probe

import (
	"strings"
	"testing"
)

func TestParsePixelWidth(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    int
		wantErr bool
	}{
		{
			"typical sips output",
			"/photos/sunset.jpg\n  pixelWidth: 2000\n",
			2000, false,
		},
		{
			"extra properties",
			"/photos/a.png\n  pixelHeight: 900\n  pixelWidth: 1440\n",
			1440, false,
		},
		{
			"no pixelWidth line",
			"/photos/a.png\n  pixelHeight: 900\n",
			0, true,
		},
		{
			"unparsable value",
			"pixelWidth: lots\n",
			0, true,
		},
		{
			"zero width",
			"pixelWidth: 0\n",
			0, true,
		},
		{
			"empty output",
			"",
			0, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePixelWidth([]byte(tt.out), "test.jpg")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePixelWidth error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePixelWidth = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParsePixelWidth_ErrorNamesFile(t *testing.T) {
	_, err := ParsePixelWidth([]byte("nothing useful"), "gallery/cat.jpg")
	if err == nil || !strings.Contains(err.Error(), "gallery/cat.jpg") {
		t.Errorf("error should name the file, got %v", err)
	}
}
