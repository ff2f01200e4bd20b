package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OrderService/internal/domain"
	"github.com/m04kA/SMC-OrderService/pkg/ptr"
)

type MockBotAPI struct {
	mock.Mock
}

func (m *MockBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	return args.Get(0).(tgbotapi.Message), args.Error(1)
}

func TestService_NotifyOrderUpserted(t *testing.T) {
	bot := new(MockBotAPI)
	svc := NewService(bot)

	bot.On("Send", mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok &&
			msg.ChatID == 42 &&
			msg.ParseMode == tgbotapi.ModeHTML &&
			assert.ObjectsAreEqual(true, len(msg.Text) > 0)
	})).Return(tgbotapi.Message{}, nil).Once()

	err := svc.NotifyOrderUpserted(&domain.Order{
		PublicNo:  "A-0001",
		OwnerTgID: ptr.To(int64(42)),
		Item:      "пальто",
		Status:    "ready",
	})
	require.NoError(t, err)
	bot.AssertExpectations(t)
}

func TestService_NotifyOrderUpserted_NoRecipient(t *testing.T) {
	bot := new(MockBotAPI)
	svc := NewService(bot)

	err := svc.NotifyOrderUpserted(&domain.Order{PublicNo: "A-0001", Item: "пальто", Status: "new"})
	assert.ErrorIs(t, err, ErrNoRecipient)
	bot.AssertNotCalled(t, "Send")
}

func TestService_NotifyOrderUpserted_SendError(t *testing.T) {
	bot := new(MockBotAPI)
	svc := NewService(bot)

	bot.On("Send", mock.Anything).Return(tgbotapi.Message{}, assert.AnError).Once()

	err := svc.NotifyOrderUpserted(&domain.Order{
		PublicNo:  "A-0001",
		OwnerTgID: ptr.To(int64(42)),
		Item:      "пальто",
		Status:    "ready",
	})
	assert.ErrorIs(t, err, ErrSendMessage)
}
