package chat_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/parley-sh/parley/pkg/chat"
	"github.com/parley-sh/parley/pkg/search"
)

var _ = Describe("Reduce", func() {
	Describe("reasoning entries", func() {
		It("should append a placeholder to an empty transcript", func() {
			entries := chat.Reduce(nil, chat.NewReasoningMessage("Thinking"))

			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Reasoning).To(BeTrue())
			Expect(entries[0].ReasoningNote).To(Equal("Thinking"))
		})

		It("should collapse a burst of reasoning updates into one entry", func() {
			var entries []chat.Message
			entries = chat.Append(entries, chat.NewUserMessage("what's the weather"))
			entries = chat.Reduce(entries, chat.NewReasoningMessage("Reading the question"))
			entries = chat.Reduce(entries, chat.NewReasoningMessage("Searching"))
			entries = chat.Reduce(entries, chat.NewReasoningMessage("Summarizing"))

			Expect(entries).To(HaveLen(2))
			Expect(entries[0].IsUser()).To(BeTrue())
			Expect(entries[1].Reasoning).To(BeTrue())
			Expect(entries[1].ReasoningNote).To(Equal("Summarizing"))
		})

		It("should keep user entries and drop finalized assistant entries", func() {
			var entries []chat.Message
			entries = chat.Append(entries, chat.NewUserMessage("first question"))
			entries = chat.Reduce(entries, chat.NewAssistantMessage("first answer"))
			entries = chat.Append(entries, chat.NewUserMessage("second question"))
			entries = chat.Reduce(entries, chat.NewReasoningMessage("Working on it"))

			Expect(entries).To(HaveLen(3))
			Expect(entries[0].Content).To(Equal("first question"))
			Expect(entries[1].Content).To(Equal("second question"))
			Expect(entries[2].Reasoning).To(BeTrue())
		})

		It("should replace the placeholder in place, not at the tail", func() {
			var entries []chat.Message
			entries = chat.Reduce(entries, chat.NewReasoningMessage("Step one"))
			entries = chat.Append(entries, chat.NewUserMessage("impatient follow-up"))
			entries = chat.Reduce(entries, chat.NewReasoningMessage("Step two"))

			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Reasoning).To(BeTrue())
			Expect(entries[0].ReasoningNote).To(Equal("Step two"))
			Expect(entries[1].IsUser()).To(BeTrue())
		})
	})

	Describe("final entries", func() {
		It("should append after a user entry", func() {
			var entries []chat.Message
			entries = chat.Append(entries, chat.NewUserMessage("hello"))
			entries = chat.Reduce(entries, chat.NewAssistantMessage("hi"))

			Expect(entries).To(HaveLen(2))
			Expect(entries[1].Content).To(Equal("hi"))
		})

		It("should append after a reasoning placeholder, preserving it", func() {
			var entries []chat.Message
			entries = chat.Reduce(entries, chat.NewReasoningMessage("Thinking"))
			entries = chat.Reduce(entries, chat.NewAssistantMessage("partial answer"))

			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Reasoning).To(BeTrue())
			Expect(entries[1].Content).To(Equal("partial answer"))
		})

		It("should coalesce consecutive finals into the latest one", func() {
			var entries []chat.Message
			entries = chat.Append(entries, chat.NewUserMessage("question"))
			entries = chat.Reduce(entries, chat.NewAssistantMessage("partial"))
			entries = chat.Reduce(entries, chat.NewAssistantMessage("partial plus more"))
			entries = chat.Reduce(entries, chat.NewAssistantMessage("complete answer"))

			Expect(entries).To(HaveLen(2))
			Expect(entries[1].Content).To(Equal("complete answer"))
		})

		It("should never coalesce over a user entry", func() {
			var entries []chat.Message
			entries = chat.Reduce(entries, chat.NewAssistantMessage("answer"))
			entries = chat.Append(entries, chat.NewUserMessage("next question"))
			entries = chat.Reduce(entries, chat.NewAssistantMessage("next answer"))

			Expect(entries).To(HaveLen(3))
			Expect(entries[1].IsUser()).To(BeTrue())
		})

		It("should carry search results on the coalesced entry", func() {
			rs := search.ResultSet{"web": {{Title: "doc", Href: "http://x"}}}
			final := chat.NewAssistantMessage("sourced answer")
			final.Results = rs

			var entries []chat.Message
			entries = chat.Reduce(entries, chat.NewAssistantMessage("partial"))
			entries = chat.Reduce(entries, final)

			Expect(entries).To(HaveLen(1))
			Expect(entries[0].HasResults()).To(BeTrue())
		})

		It("should run the full turn shape: user, reasoning burst, final", func() {
			var entries []chat.Message
			entries = chat.Append(entries, chat.NewUserMessage("question"))
			entries = chat.Reduce(entries, chat.NewReasoningMessage("Step one"))
			entries = chat.Reduce(entries, chat.NewReasoningMessage("Step two"))
			entries = chat.Reduce(entries, chat.NewAssistantMessage("answer"))

			Expect(entries).To(HaveLen(3))
			Expect(entries[0].IsUser()).To(BeTrue())
			Expect(entries[1].Reasoning).To(BeTrue())
			Expect(entries[1].ReasoningNote).To(Equal("Step two"))
			Expect(entries[2].Content).To(Equal("answer"))
		})
	})

	Describe("immutability", func() {
		It("should not mutate the input transcript", func() {
			var entries []chat.Message
			entries = chat.Append(entries, chat.NewUserMessage("question"))
			entries = chat.Reduce(entries, chat.NewAssistantMessage("partial"))

			before := make([]chat.Message, len(entries))
			copy(before, entries)

			_ = chat.Reduce(entries, chat.NewAssistantMessage("replacement"))

			Expect(entries).To(Equal(before))
		})
	})
})

var _ = Describe("Transcript helpers", func() {
	Describe("LastEntry", func() {
		It("should report nothing for an empty transcript", func() {
			_, ok := chat.LastEntry(nil)
			Expect(ok).To(BeFalse())
		})

		It("should return the most recent entry", func() {
			entries := chat.Append(nil, chat.NewUserMessage("only"))
			last, ok := chat.LastEntry(entries)

			Expect(ok).To(BeTrue())
			Expect(last.Content).To(Equal("only"))
		})
	})

	Describe("ReasoningEntry", func() {
		It("should find the placeholder anywhere in the transcript", func() {
			var entries []chat.Message
			entries = chat.Reduce(entries, chat.NewReasoningMessage("busy"))
			entries = chat.Append(entries, chat.NewUserMessage("later"))

			placeholder, ok := chat.ReasoningEntry(entries)
			Expect(ok).To(BeTrue())
			Expect(placeholder.ReasoningNote).To(Equal("busy"))
		})

		It("should report nothing when no placeholder exists", func() {
			entries := chat.Append(nil, chat.NewUserMessage("hi"))
			_, ok := chat.ReasoningEntry(entries)
			Expect(ok).To(BeFalse())
		})
	})
})
