package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"car-shopper/domain"
	"car-shopper/logger"
	"car-shopper/repository"
)

type assistantRule struct {
	triggers []string
	response string
}

func (r assistantRule) matches(question string) bool {
	for _, t := range r.triggers {
		if strings.Contains(question, t) {
			return true
		}
	}
	return false
}

// Evaluated in order; the first rule with a matching trigger wins.
var assistantRules = []assistantRule{
	{
		triggers: []string{"leas", "financ"},
		response: "Leasing vs. financing comes down to your priorities. With leasing, you'll typically have lower monthly payments but won't own the car at the end of the term. Financing means higher monthly payments, but you'll build equity and own the vehicle once it's paid off. Leasing is good for people who want a new car every few years with warranty coverage, while financing makes more sense if you plan to keep the car long-term.",
	},
	{
		triggers: []string{"accident"},
		response: "To check if a used car has been in an accident, you should: 1) Get a vehicle history report (Carfax or AutoCheck), 2) Look for inconsistent panel gaps or paint differences, 3) Check for frame damage, 4) Have a mechanic inspect it, 5) Ask the seller directly. Even minor accidents can affect a car's value, so it's important to know the full history before purchasing.",
	},
	{
		triggers: []string{"question"},
		response: "When buying a used car, ask these key questions: 1) Why is the owner selling? 2) Has the car been in any accidents? 3) Are there service records available? 4) How many previous owners? 5) Are there any known issues or needed repairs? 6) Is the price negotiable? 7) Can I take it for a pre-purchase inspection? 8) Is there any remaining warranty? These questions will help you understand the car's history and condition better.",
	},
	{
		triggers: []string{"maintenance", "budget"},
		response: "For car maintenance budgeting, a good rule of thumb is to set aside $100-150 per month for a used car. Annual maintenance costs typically range from $500-700 for a reliable used sedan, while SUVs and luxury vehicles can cost $800-1,500+ annually. Regular maintenance includes oil changes ($30-80), tire rotations ($20-50), and brake services ($150-300). Don't forget to budget for unexpected repairs by keeping an emergency fund of at least $1,000-1,500.",
	},
	{
		triggers: []string{"resale"},
		response: "Cars with the best resale value typically include Toyota, Honda, Subaru, and Lexus models. Specifically, the Toyota Tacoma, Toyota 4Runner, Jeep Wrangler, Honda CR-V, and Subaru Outback consistently maintain strong resale values. These vehicles typically retain 50-60% of their value after five years. Factors that positively affect resale value include reliability reputation, fuel efficiency, popular features, and neutral colors like silver, white, or black.",
	},
	{
		triggers: []string{"interest"},
		response: "A good interest rate for an auto loan depends on your credit score and market conditions. As of 2025, with excellent credit (750+), you might qualify for 3-4.5%. Good credit (700-749) might get you 4.5-6%. Average credit (650-699) typically sees 6-9%, while below 650 could mean 9-15% or higher. New cars generally have lower rates than used cars. Always shop around at credit unions, banks, and online lenders to find the best rate before visiting a dealership.",
	},
}

var assistantSuggestions = []string{
	"What's the difference between leasing and financing a car?",
	"How do I know if a used car has been in an accident?",
	"What questions should I ask when buying a used car?",
	"How much should I budget for car maintenance?",
	"Which cars have the best resale value?",
	"What's a good interest rate for an auto loan?",
}

// Reply returns the canned answer for a question. Matching is a
// case-insensitive substring test.
func Reply(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, rule := range assistantRules {
		if rule.matches(q) {
			return rule.response
		}
	}
	return "I understand you're asking about " + q + ". As your car buying assistant, I can help with questions about car financing, features comparisons, maintenance costs, and more. Could you provide a bit more detail about what specific information you're looking for regarding this topic?"
}

type AssistantService struct {
	messages repository.MessageRepository
	now      func() time.Time
}

func NewAssistantService(messages repository.MessageRepository) *AssistantService {
	return &AssistantService{messages: messages, now: time.Now}
}

// Ask records the question and the assistant's reply in the conversation.
func (s *AssistantService) Ask(ctx context.Context, question string) (domain.ChatExchange, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.ChatExchange{}, ErrEmptyQuestion
	}

	asked := s.now()
	exchange := domain.ChatExchange{
		Question: domain.ChatMessage{
			ID:        uuid.NewString(),
			Text:      question,
			Sender:    domain.SenderUser,
			Timestamp: asked,
		},
		Answer: domain.ChatMessage{
			ID:        uuid.NewString(),
			Text:      Reply(question),
			Sender:    domain.SenderAssistant,
			Timestamp: s.now(),
		},
	}
	s.messages.Append(exchange.Question, exchange.Answer)

	logger.FromContext(ctx).Debug().
		Str("question_id", exchange.Question.ID).
		Int("question_len", len(question)).
		Msg("assistant replied")

	return exchange, nil
}

func (s *AssistantService) History() []domain.ChatMessage {
	return s.messages.List()
}

func (s *AssistantService) Clear() {
	s.messages.Clear()
}

func (s *AssistantService) Suggestions() []string {
	out := make([]string, len(assistantSuggestions))
	copy(out, assistantSuggestions)
	return out
}
