package advisor

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

// Speaker marks who wrote a chat message.
type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerModel Speaker = "model"
)

// Message is one line of the assistant chat.
type Message struct {
	Speaker Speaker
	Text    string
}

// DefaultTimeout bounds one advisor call.
const DefaultTimeout = 20 * time.Second

// Chat is the assistant conversation. Questions are answered on a separate
// goroutine so the caller never waits on the advisor.
type Chat struct {
	mu       sync.Mutex
	advisor  Advisor
	timeout  time.Duration
	notify   func()
	messages []Message
	loading  bool
	wg       sync.WaitGroup
}

// NewChat starts a conversation with the greeting. notify, if set, is called
// after each reply lands.
func NewChat(a Advisor, timeout time.Duration, notify func()) *Chat {
	if a == nil {
		a = Unconfigured()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Chat{
		advisor:  a,
		timeout:  timeout,
		notify:   notify,
		messages: []Message{{Speaker: SpeakerModel, Text: GreetingMessage}},
	}
}

// Ask records the question and requests advice in the background. Blank
// questions and questions sent while a reply is outstanding are dropped.
func (c *Chat) Ask(room []RoomItem, question string) bool {
	question = strings.TrimSpace(question)
	c.mu.Lock()
	if question == "" || c.loading {
		c.mu.Unlock()
		return false
	}
	c.messages = append(c.messages, Message{Speaker: SpeakerUser, Text: question})
	c.loading = true
	c.mu.Unlock()

	snapshot := append([]RoomItem(nil), room...)
	c.wg.Add(1)
	go c.answer(snapshot, question)
	return true
}

func (c *Chat) answer(room []RoomItem, question string) {
	defer c.wg.Done()
	reply := FailureMessage
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[chat] advisor panic: %v", r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		reply = c.advisor.Advise(ctx, room, question)
	}()

	c.mu.Lock()
	c.messages = append(c.messages, Message{Speaker: SpeakerModel, Text: reply})
	c.loading = false
	notify := c.notify
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Messages returns a copy of the conversation.
func (c *Chat) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

// Loading reports whether a reply is outstanding.
func (c *Chat) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Wait blocks until outstanding replies have landed.
func (c *Chat) Wait() {
	c.wg.Wait()
}
