package advice

import "context"

// Service answers advice requests, preferring the remote backend and
// degrading to the fixed template for the topic. Advise never fails:
// every turn gets a response string.
type Service struct {
	cfg    Config
	client Client
}

func NewService(cfg Config, client Client) *Service {
	return &Service{cfg: cfg, client: client}
}

func (s *Service) Advise(ctx context.Context, topic Topic, prompt string) string {
	if s.cfg.Enabled && s.client != nil {
		resp, err := s.client.Generate(ctx, GenerateRequest{Topic: topic, Prompt: prompt})
		if err == nil && resp.Text != "" {
			return resp.Text
		}
	}
	return Template(topic)
}
