package redorblack

import (
	"github.com/stretchr/testify/mock"

	"github.com/cardroom/playingcards/pkg/cards"
)

// MockDealer implements Dealer for testing
type MockDealer struct {
	mock.Mock
}

// TakeCard implements Dealer
func (m *MockDealer) TakeCard() (cards.Card, error) {
	args := m.Called()
	return args.Get(0).(cards.Card), args.Error(1)
}
