package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(12, 10); err != nil {
		t.Fatalf("LoadDefaults error = %v", err)
	}
	for _, name := range []FontName{Regular, Mono, Small} {
		face := name.Get()
		if face == nil {
			t.Fatalf("%s.Get() = nil", name)
		}
		if h := face.Metrics().Height; h <= 0 {
			t.Errorf("%s line height = %v, want > 0", name, h)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("LoadFontWithSize(garbage) error = nil")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get(unknown) did not panic")
		}
	}()
	FontName("missing").Get()
}
