package notify

import (
	"errors"
	"testing"
)

type stubNotifier struct {
	err   error
	calls int
}

func (s *stubNotifier) Notify(title, message string) error {
	s.calls++
	return s.err
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name          string
		primaryErr    error
		wantSecondary int
		wantErr       bool
	}{
		{"Primary succeeds", nil, 0, false},
		{"Primary fails", errors.New("no dbus"), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &stubNotifier{err: tt.primaryErr}
			secondary := &stubNotifier{}
			err := Fallback{Primary: primary, Secondary: secondary}.Notify("title", "message")
			if (err != nil) != tt.wantErr {
				t.Errorf("Notify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if primary.calls != 1 {
				t.Errorf("primary calls = %d, want 1", primary.calls)
			}
			if secondary.calls != tt.wantSecondary {
				t.Errorf("secondary calls = %d, want %d", secondary.calls, tt.wantSecondary)
			}
		})
	}
}

func TestFallbackWithoutSecondary(t *testing.T) {
	primary := &stubNotifier{err: errors.New("no dbus")}
	if err := (Fallback{Primary: primary}).Notify("t", "m"); err == nil {
		t.Error("Notify() error = nil, want primary error")
	}
}

func TestLogNotify(t *testing.T) {
	if err := (Log{}).Notify("title", "message"); err != nil {
		t.Errorf("Log.Notify() error = %v", err)
	}
}
