package chat_test

import (
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/parley-sh/parley/pkg/chat"
)

type fakeSender struct {
	sent []chat.Request
	err  error
}

func (f *fakeSender) SendJSON(v interface{}) error {
	if f.err != nil {
		return f.err
	}
	if req, ok := v.(chat.Request); ok {
		f.sent = append(f.sent, req)
	}
	return nil
}

func frame(v map[string]interface{}) []byte {
	data, err := json.Marshal(v)
	Expect(err).NotTo(HaveOccurred())
	return data
}

var _ = Describe("Session", func() {
	var (
		session *chat.Session
		sender  *fakeSender
	)

	BeforeEach(func() {
		session = chat.NewSession("alice", "session-1")
		sender = &fakeSender{}
		session.Attach(sender)
	})

	Describe("Submit", func() {
		It("should append the user entry and send the request", func() {
			err := session.Submit("hello there", false)
			Expect(err).NotTo(HaveOccurred())

			entries := session.Transcript()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].IsUser()).To(BeTrue())
			Expect(entries[0].Content).To(Equal("hello there"))

			Expect(sender.sent).To(HaveLen(1))
			Expect(sender.sent[0].UserID).To(Equal("alice"))
			Expect(sender.sent[0].SessionID).To(Equal("session-1"))
			Expect(sender.sent[0].UserMessage).To(Equal("hello there"))
			Expect(sender.sent[0].Search).To(BeFalse())
			Expect(sender.sent[0].ID).NotTo(BeZero())

			Expect(session.Pending()).To(BeTrue())
		})

		It("should carry the search flag on the request", func() {
			Expect(session.Submit("find things", true)).To(Succeed())
			Expect(sender.sent[0].Search).To(BeTrue())
		})

		It("should refuse blank input without touching the transcript", func() {
			err := session.Submit("   \n  ", true)

			Expect(err).To(MatchError(chat.ErrEmptyMessage))
			Expect(session.Transcript()).To(BeEmpty())
			Expect(sender.sent).To(BeEmpty())
			Expect(session.Pending()).To(BeFalse())
		})

		It("should refuse submissions while disconnected", func() {
			session.HandleDisconnect(nil)

			err := session.Submit("anyone home?", false)

			Expect(err).To(MatchError(chat.ErrNotConnected))
			Expect(session.Transcript()).To(BeEmpty())
			Expect(session.Pending()).To(BeFalse())
		})

		It("should surface send failures without marking pending", func() {
			sender.err = errors.New("broken pipe")

			err := session.Submit("doomed", false)

			Expect(err).To(HaveOccurred())
			Expect(session.Pending()).To(BeFalse())
		})

		It("should assign increasing sequence numbers", func() {
			Expect(session.Submit("one", false)).To(Succeed())
			Expect(session.Submit("two", false)).To(Succeed())

			entries := session.Transcript()
			Expect(entries[1].Seq).To(BeNumerically(">", entries[0].Seq))
		})
	})

	Describe("HandleFrame", func() {
		It("should fold a reasoning frame into a placeholder", func() {
			Expect(session.Submit("question", false)).To(Succeed())

			session.HandleFrame(frame(map[string]interface{}{
				"chain_of_thought":         true,
				"chain_of_thought_message": "Searching",
			}))

			entries := session.Transcript()
			Expect(entries).To(HaveLen(2))
			Expect(entries[1].Reasoning).To(BeTrue())
			Expect(entries[1].ReasoningNote).To(Equal("Searching"))
			Expect(session.Pending()).To(BeTrue())
		})

		It("should clear pending when the final answer arrives", func() {
			Expect(session.Submit("question", false)).To(Succeed())

			session.HandleFrame(frame(map[string]interface{}{
				"chain_of_thought": false,
				"message":          "the answer",
			}))

			entries := session.Transcript()
			Expect(entries).To(HaveLen(2))
			Expect(entries[1].Content).To(Equal("the answer"))
			Expect(session.Pending()).To(BeFalse())
		})

		It("should attach search results to the entry", func() {
			session.HandleFrame(frame(map[string]interface{}{
				"message": "sourced answer",
				"search_results": map[string]interface{}{
					"web": []map[string]interface{}{
						{"title": "doc", "href": "http://example.com"},
					},
				},
			}))

			entries := session.Transcript()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].HasResults()).To(BeTrue())
		})

		It("should skip malformed frames without touching the transcript", func() {
			Expect(session.Submit("question", false)).To(Succeed())

			session.HandleFrame([]byte("not json at all"))
			session.HandleFrame([]byte(`["wrong", "shape"]`))

			Expect(session.Transcript()).To(HaveLen(1))
			Expect(session.Pending()).To(BeTrue())
		})

		It("should collapse a reasoning burst followed by a streamed final", func() {
			Expect(session.Submit("question", false)).To(Succeed())

			session.HandleFrame(frame(map[string]interface{}{
				"chain_of_thought": true, "chain_of_thought_message": "Step one",
			}))
			session.HandleFrame(frame(map[string]interface{}{
				"chain_of_thought": true, "chain_of_thought_message": "Step two",
			}))
			session.HandleFrame(frame(map[string]interface{}{"message": "partial"}))
			session.HandleFrame(frame(map[string]interface{}{"message": "full answer"}))

			entries := session.Transcript()
			Expect(entries).To(HaveLen(3))
			Expect(entries[0].IsUser()).To(BeTrue())
			Expect(entries[1].ReasoningNote).To(Equal("Step two"))
			Expect(entries[2].Content).To(Equal("full answer"))
		})
	})

	Describe("HandleDisconnect", func() {
		It("should freeze the transcript and clear pending", func() {
			Expect(session.Submit("question", false)).To(Succeed())

			session.HandleDisconnect(errors.New("connection reset"))

			Expect(session.Connected()).To(BeFalse())
			Expect(session.Pending()).To(BeFalse())
			Expect(session.Transcript()).To(HaveLen(1))
		})

		It("should allow submissions again after reattach", func() {
			session.HandleDisconnect(nil)
			Expect(session.Submit("hello?", false)).To(MatchError(chat.ErrNotConnected))

			fresh := &fakeSender{}
			session.Attach(fresh)

			Expect(session.Submit("hello again", false)).To(Succeed())
			Expect(fresh.sent).To(HaveLen(1))
			Expect(session.Transcript()).To(HaveLen(1))
		})
	})

	Describe("OnChange", func() {
		It("should deliver a snapshot after every mutation", func() {
			var snapshots [][]chat.Message
			session.OnChange(func(entries []chat.Message) {
				snapshots = append(snapshots, entries)
			})

			Expect(session.Submit("question", false)).To(Succeed())
			session.HandleFrame(frame(map[string]interface{}{"message": "answer"}))

			Expect(snapshots).To(HaveLen(2))
			Expect(snapshots[0]).To(HaveLen(1))
			Expect(snapshots[1]).To(HaveLen(2))
		})
	})

	Describe("Transcript", func() {
		It("should return a copy callers cannot use to mutate the session", func() {
			Expect(session.Submit("question", false)).To(Succeed())

			entries := session.Transcript()
			entries[0].Content = "tampered"

			Expect(session.Transcript()[0].Content).To(Equal("question"))
		})
	})
})
