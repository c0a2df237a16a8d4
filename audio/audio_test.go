package audio

import (
	"errors"
	"io"
	"testing"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return NewBufferSource(make([]float32, 100), 44100), nil
}

// mockEncoder is a test encoder implementation
type mockEncoder struct {
	name string
}

func (e *mockEncoder) Encode(w io.WriteSeeker, sampleRate int, samples []int16) error {
	return errors.New("not implemented")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	oggDecoder := &mockDecoder{name: "ogg"}

	registry.Register("wav", wavDecoder)
	registry.Register("mp3", mp3Decoder)
	registry.Register("ogg", oggDecoder)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wavDecoder, true},
		{"mp3", mp3Decoder, true},
		{"ogg", oggDecoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong decoder", tt.format)
			}
		})
	}
}

func TestRegistry_Encoders(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavEncoder := &mockEncoder{name: "wav"}

	registry.RegisterEncoder("wav", wavEncoder)

	got, ok := registry.GetEncoder("wav")
	if !ok {
		t.Fatal("Registry.GetEncoder() failed to retrieve registered encoder")
	}
	if got != wavEncoder {
		t.Error("Registry.GetEncoder() returned different encoder instance")
	}

	// Decode-only formats have no encoder
	if _, ok := registry.GetEncoder("mp3"); ok {
		t.Error("Registry.GetEncoder() returned ok=true for decode-only format")
	}
}

func TestRegistry_EncoderIndependentOfDecoder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("mp3", &mockDecoder{name: "mp3"})

	if _, ok := registry.GetEncoder("mp3"); ok {
		t.Error("registering a decoder must not register an encoder")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder1 := &mockDecoder{name: "first"}
	decoder2 := &mockDecoder{name: "second"}

	registry.Register("wav", decoder1)
	registry.Register("wav", decoder2)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != decoder2 {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}
	encoder := &mockEncoder{name: "test"}

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			registry.Register("format", decoder)
			registry.RegisterEncoder("format", encoder)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		go func() {
			_, _ = registry.Get("format")
			_, _ = registry.GetEncoder("format")
			done <- true
		}()
	}

	for i := 0; i < 20; i++ {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok || got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
	gotEnc, ok := registry.GetEncoder("format")
	if !ok || gotEnc != encoder {
		t.Error("Registry returned wrong encoder after concurrent operations")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	decoder := &mockDecoder{}
	registry.Register("wav", decoder)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = registry.Get("wav")
	}
}
