package vadi

import (
	"sort"
	"strings"
	"time"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/vadibank/vadi/model"
)

// agentReplyDelay is the scripted follow-up offset: the auto-reply is
// timestamped two minutes after the user message.
const agentReplyDelay = 2 * time.Minute

const agentReplyText = "Talebinizi aldık, kısa süre içinde dönüş yapacağız."

// SendSupportMessage appends a user message and exactly one scripted agent
// reply. Blank or whitespace-only input is a no-op and returns nil.
func (v *Vadi) SendSupportMessage(text string) []*model.SupportMessage {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.clock()
	userMessage := &model.SupportMessage{
		MessageID: model.GenerateIDWithPrefix(model.PrefixMessage),
		Author:    model.AuthorUser,
		Message:   trimmed,
		CreatedAt: now,
	}
	agentMessage := &model.SupportMessage{
		MessageID: model.GenerateIDWithPrefix(model.PrefixMessage),
		Author:    model.AuthorAgent,
		Message:   agentReplyText,
		CreatedAt: now.Add(agentReplyDelay),
	}
	v.state.SupportChat = append(v.state.SupportChat, userMessage, agentMessage)

	v.commit("support.message_sent", userMessage)
	return []*model.SupportMessage{userMessage, agentMessage}
}

// SearchFAQs ranks FAQ entries against the query by Levenshtein similarity
// over the question text, best match first. A blank query returns the full
// list in stored order.
func (v *Vadi) SearchFAQs(query string) []model.FAQ {
	v.mu.Lock()
	defer v.mu.Unlock()

	faqs := make([]model.FAQ, len(v.state.FAQs))
	copy(faqs, v.state.FAQs)

	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return faqs
	}

	// Ratios are tracked per index, not per question text, so entries with
	// identical questions keep separate ranking slots.
	ratios := make([]float64, len(faqs))
	for i, faq := range faqs {
		question := strings.ToLower(faq.Question)
		ratio := levenshtein.RatioForStrings([]rune(trimmed), []rune(question), levenshtein.DefaultOptions)
		if strings.Contains(question, trimmed) {
			ratio = 1
		}
		ratios[i] = ratio
	}
	order := make([]int, len(faqs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return ratios[order[i]] > ratios[order[j]]
	})
	ranked := make([]model.FAQ, len(faqs))
	for rank, idx := range order {
		ranked[rank] = faqs[idx]
	}
	return ranked
}
