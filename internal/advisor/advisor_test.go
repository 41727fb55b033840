package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

type panickingGenerator struct{}

func (panickingGenerator) Generate(context.Context, string) (string, error) {
	panic("boom")
}

func TestUnconfigured(t *testing.T) {
	got := Unconfigured().Advise(context.Background(), nil, "what colour rug?")
	if got != UnconfiguredMessage {
		t.Errorf("got %q, want %q", got, UnconfiguredMessage)
	}
}

func TestNew_EmptyKeyIsUnconfigured(t *testing.T) {
	a := New(context.Background(), "   ", "")
	if got := a.Advise(context.Background(), nil, "hi"); got != UnconfiguredMessage {
		t.Errorf("got %q, want %q", got, UnconfiguredMessage)
	}
}

func TestGemini_Advise(t *testing.T) {
	gen := &fakeGenerator{reply: "  Add a warm lamp by the sofa.  "}
	room := []RoomItem{{Name: "Cloud Sofa", Color: "#a5b4fc", X: 2, Y: 2}}
	got := NewGemini(gen).Advise(context.Background(), room, "needs more light?")
	if got != "Add a warm lamp by the sofa." {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(gen.prompt, "- Cloud Sofa (#a5b4fc) at position 2,2") {
		t.Errorf("prompt missing room layout:\n%s", gen.prompt)
	}
	if !strings.Contains(gen.prompt, `User Question: "needs more light?"`) {
		t.Errorf("prompt missing question:\n%s", gen.prompt)
	}
}

func TestGemini_Advise_Failure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("service unavailable")}
	got := NewGemini(gen).Advise(context.Background(), nil, "hi")
	if got != FailureMessage {
		t.Errorf("got %q, want %q", got, FailureMessage)
	}
}

func TestGemini_Advise_EmptyReply(t *testing.T) {
	got := NewGemini(&fakeGenerator{}).Advise(context.Background(), nil, "hi")
	if got != EmptyReplyMessage {
		t.Errorf("got %q, want %q", got, EmptyReplyMessage)
	}
}

func TestGemini_Advise_RecoversPanic(t *testing.T) {
	got := NewGemini(panickingGenerator{}).Advise(context.Background(), nil, "hi")
	if got != FailureMessage {
		t.Errorf("got %q, want %q", got, FailureMessage)
	}
}

func TestBuildPrompt_EmptyRoom(t *testing.T) {
	p := BuildPrompt(nil, "where do I start?")
	if !strings.Contains(p, "The room is currently empty.") {
		t.Errorf("prompt should describe an empty room:\n%s", p)
	}
	if !strings.Contains(p, `"CozyBot"`) {
		t.Errorf("prompt should name the persona:\n%s", p)
	}
}

func TestChat_Greeting(t *testing.T) {
	c := NewChat(nil, 0, nil)
	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].Speaker != SpeakerModel || msgs[0].Text != GreetingMessage {
		t.Errorf("messages %+v, want greeting only", msgs)
	}
	if c.Loading() {
		t.Error("new chat should not be loading")
	}
}

func TestChat_Ask(t *testing.T) {
	done := make(chan struct{}, 1)
	a := Func(func(_ context.Context, room []RoomItem, q string) string {
		return "You have " + q + " and " + room[0].Name
	})
	c := NewChat(a, time.Second, func() { done <- struct{}{} })

	if !c.Ask([]RoomItem{{Name: "Monstera"}}, "  a question  ") {
		t.Fatal("Ask returned false")
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notify not called")
	}
	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("messages %+v, want 3", msgs)
	}
	if msgs[1].Speaker != SpeakerUser || msgs[1].Text != "a question" {
		t.Errorf("user message %+v", msgs[1])
	}
	if msgs[2].Speaker != SpeakerModel || msgs[2].Text != "You have a question and Monstera" {
		t.Errorf("reply %+v", msgs[2])
	}
	if c.Loading() {
		t.Error("Loading should clear after the reply")
	}
}

func TestChat_Ask_IgnoresBlank(t *testing.T) {
	c := NewChat(Unconfigured(), time.Second, nil)
	if c.Ask(nil, "   ") {
		t.Error("blank question should be ignored")
	}
	if len(c.Messages()) != 1 {
		t.Errorf("messages %d, want 1", len(c.Messages()))
	}
}

func TestChat_Ask_WhileLoading(t *testing.T) {
	release := make(chan struct{})
	a := Func(func(context.Context, []RoomItem, string) string {
		<-release
		return "ok"
	})
	c := NewChat(a, time.Second, nil)
	if !c.Ask(nil, "first") {
		t.Fatal("first Ask returned false")
	}
	if !c.Loading() {
		t.Error("Loading should be true while the advisor runs")
	}
	if c.Ask(nil, "second") {
		t.Error("Ask while loading should be dropped")
	}
	close(release)
	c.Wait()
	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Errorf("messages %+v, want greeting, question and reply", msgs)
	}
}

func TestChat_Ask_AdvisorPanics(t *testing.T) {
	a := Func(func(context.Context, []RoomItem, string) string {
		panic("boom")
	})
	c := NewChat(a, time.Second, nil)
	c.Ask(nil, "hi")
	c.Wait()
	msgs := c.Messages()
	if got := msgs[len(msgs)-1].Text; got != FailureMessage {
		t.Errorf("reply %q, want %q", got, FailureMessage)
	}
}

func TestChat_Ask_SnapshotsRoom(t *testing.T) {
	seen := make(chan string, 1)
	release := make(chan struct{})
	a := Func(func(_ context.Context, room []RoomItem, _ string) string {
		<-release
		seen <- room[0].Name
		return "ok"
	})
	c := NewChat(a, time.Second, nil)
	room := []RoomItem{{Name: "Monstera"}}
	c.Ask(room, "hi")
	room[0].Name = "changed"
	close(release)
	c.Wait()
	if got := <-seen; got != "Monstera" {
		t.Errorf("advisor saw %q, want the room as it was when asked", got)
	}
}
