package llm

import (
	"context"
	"fmt"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

// MockClient is a local placeholder provider so the service runs without
// credentials. It echoes the last user turn inside a post-shaped reply.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(_ context.Context, _ string, turns []domain.Turn) (string, error) {
	var lastUser string
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Speaker == domain.RoleUser {
			lastUser = turns[i].Text
			break
		}
	}
	return fmt.Sprintf("Here's a draft based on %q.\n\nEvery career pivot starts with one honest question.\n\nWhat would you do if the next step were already yours?\n\n#CareerGrowth #Nextyou #FutureOfWork", lastUser), nil
}
