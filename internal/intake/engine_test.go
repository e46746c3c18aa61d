package intake

import (
	"context"
	"errors"
	"strings"
	"testing"

	"actbot/internal/acts"
)

type memStore struct {
	acts []acts.Act
	err  error
}

func (m *memStore) Insert(_ context.Context, a acts.Act) error {
	if m.err != nil {
		return m.err
	}
	m.acts = append(m.acts, a)
	return nil
}

func (m *memStore) ScanAll(_ context.Context) ([]acts.Act, error) {
	return append([]acts.Act{}, m.acts...), nil
}

func TestStepWalksAllStates(t *testing.T) {
	s := Session{State: AwaitingDate}
	replies := []string{"07.07", "08:00-18:00", "Київ", "ремонт"}
	wantStates := []State{AwaitingTime, AwaitingLocation, AwaitingDescription, Completed}
	for i, r := range replies {
		s = Step(s, r)
		if s.State != wantStates[i] {
			t.Fatalf("after %q: state %v, want %v", r, s.State, wantStates[i])
		}
	}
	want := Answers{Date: "07.07", Time: "08:00-18:00", Location: "Київ", Description: "ремонт"}
	if s.Answers != want {
		t.Fatalf("unexpected answers: %+v", s.Answers)
	}
}

func TestStepIgnoresBlankText(t *testing.T) {
	s := Session{State: AwaitingLocation, Answers: Answers{Date: "d", Time: "t"}}
	got := Step(s, "   \n")
	if got != s {
		t.Fatalf("blank text changed session: %+v", got)
	}
	if Step(Session{State: Completed}, "x").State != Completed {
		t.Fatalf("completed session must stay completed")
	}
}

func TestPromptPerState(t *testing.T) {
	for _, st := range []State{AwaitingDate, AwaitingTime, AwaitingLocation, AwaitingDescription} {
		if Prompt(st) == "" {
			t.Fatalf("missing prompt for %v", st)
		}
	}
	if Prompt(Completed) != "" {
		t.Fatalf("completed state must not prompt")
	}
}

func TestEngineFullIntakePersistsOnce(t *testing.T) {
	store := &memStore{}
	e := NewEngine(store)
	ctx := context.Background()

	s := e.Start(7)
	if s.State != AwaitingDate || s.ID == "" {
		t.Fatalf("unexpected start session: %+v", s)
	}
	replies := []string{"09.07", "10:00-12:00", "Львів", "монтаж"}
	var out Outcome
	for i, r := range replies {
		var err error
		out, err = e.Answer(ctx, 7, "Іван Франко", r)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if i < 3 && (out.Completed || out.Prompt != Prompt(out.Session.State)) {
			t.Fatalf("answer %d: unexpected outcome %+v", i, out)
		}
	}
	if !out.Completed {
		t.Fatalf("intake not completed")
	}
	want := acts.Act{SubmitterID: 7, SubmitterName: "Іван Франко", Date: "09.07", Time: "10:00-12:00", Location: "Львів", Description: "монтаж"}
	if out.Act != want {
		t.Fatalf("unexpected act: %+v", out.Act)
	}
	if len(store.acts) != 1 || store.acts[0] != want {
		t.Fatalf("unexpected stored acts: %+v", store.acts)
	}
	if e.Active(7) {
		t.Fatalf("session must be destroyed after completion")
	}
	if _, err := e.Answer(ctx, 7, "Іван Франко", "more"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
}

func TestEngineRestartDiscardsPartialAnswers(t *testing.T) {
	store := &memStore{}
	e := NewEngine(store)
	ctx := context.Background()

	first := e.Start(1)
	_, _ = e.Answer(ctx, 1, "u", "01.07")
	_, _ = e.Answer(ctx, 1, "u", "old time")

	second := e.Start(1)
	if second.ID == first.ID {
		t.Fatalf("restart must create a new session")
	}
	for _, r := range []string{"02.07", "new time", "loc", "desc"} {
		if _, err := e.Answer(ctx, 1, "u", r); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if len(store.acts) != 1 {
		t.Fatalf("want 1 act, got %d", len(store.acts))
	}
	if store.acts[0].Date != "02.07" || store.acts[0].Time != "new time" {
		t.Fatalf("partial answers leaked: %+v", store.acts[0])
	}
}

func TestEngineSessionsAreIndependent(t *testing.T) {
	store := &memStore{}
	e := NewEngine(store)
	ctx := context.Background()

	e.Start(1)
	e.Start(2)
	_, _ = e.Answer(ctx, 1, "a", "d1")
	out, _ := e.Answer(ctx, 2, "b", "d2")
	if out.Session.State != AwaitingTime || out.Session.Answers.Date != "d2" {
		t.Fatalf("sessions interfered: %+v", out.Session)
	}
	if e.Open() != 2 {
		t.Fatalf("want 2 open sessions, got %d", e.Open())
	}
	if !e.Abandon(1) || e.Abandon(1) {
		t.Fatalf("abandon should succeed exactly once")
	}
	if !e.Active(2) {
		t.Fatalf("abandoning user 1 closed user 2")
	}
}

func TestEnginePersistFailureClosesSession(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	e := NewEngine(store)
	ctx := context.Background()

	e.Start(3)
	var err error
	var out Outcome
	for _, r := range []string{"a", "b", "c", "d"} {
		out, err = e.Answer(ctx, 3, "x", r)
	}
	if !errors.Is(err, ErrPersist) || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("want ErrPersist wrapping cause, got %v", err)
	}
	if out.Completed {
		t.Fatalf("failed write must not report completion")
	}
	if e.Active(3) {
		t.Fatalf("session must be dropped after a failed write")
	}
}

func TestFormatNotification(t *testing.T) {
	got := FormatNotification(acts.Act{SubmitterName: "N", Date: "D", Time: "T", Location: "L", Description: "X"})
	want := "🔔 Новий акт від N\n📅 D 🕒 T\n📍 L\n📄 X"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
