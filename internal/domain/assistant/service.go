package assistant

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hlms/hlms/internal/platform/genai"
)

type Service struct {
	repo      Repository
	completer genai.TextCompleter
	log       zerolog.Logger
}

func NewService(repo Repository, completer genai.TextCompleter, log zerolog.Logger) *Service {
	return &Service{repo: repo, completer: completer, log: log}
}

// Summarize builds a context message from the account's activity, wraps it
// in the assistant prompt and forwards it to the text-completion API. When
// the model returns no candidate text the raw context message is the
// answer, so the endpoint still responds something useful.
func (s *Service) Summarize(ctx context.Context, email, query string) (string, error) {
	activity, err := s.repo.GetActivityByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	message := buildMessage(activity)
	prompt := buildPrompt(message, query)

	candidates, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("text completion failed")
		return "", err
	}
	if len(candidates) == 0 || candidates[0] == "" {
		return message, nil
	}
	return candidates[0], nil
}
