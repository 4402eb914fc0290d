package framebuffer

import "testing"

func TestParsePixelFormat(t *testing.T) {
	testCases := []struct {
		name string
		info varScreenInfo
		want pixelFormat
	}{
		{
			name: "rgb565",
			info: varScreenInfo{
				BitsPerPixel: 16,
				Red:          bitField{Offset: 11, Length: 5},
				Green:        bitField{Offset: 5, Length: 6},
				Blue:         bitField{Offset: 0, Length: 5},
			},
			want: formatRGB565,
		},
		{
			name: "xrgb8888",
			info: varScreenInfo{
				BitsPerPixel: 32,
				Red:          bitField{Offset: 16, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 0, Length: 8},
			},
			want: formatXRGB8888,
		},
		{
			name: "bgr565",
			info: varScreenInfo{
				BitsPerPixel: 16,
				Red:          bitField{Offset: 0, Length: 5},
				Green:        bitField{Offset: 5, Length: 6},
				Blue:         bitField{Offset: 11, Length: 5},
			},
			want: formatUnknown,
		},
		{
			name: "mono",
			info: varScreenInfo{BitsPerPixel: 1},
			want: formatUnknown,
		},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			if got := parsePixelFormat(&test.info); got != test.want {
				it.Errorf("expected format %d, got %d", test.want, got)
			}
		})
	}
}
