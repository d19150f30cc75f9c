package app

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"entrust_service/internal/chat/domain"

	"github.com/cucumber/godog"
)

type messageLogWorld struct {
	repo    *memoryMessageRepository
	roomID  string
	results []domain.MessageRecord
}

func (w *messageLogWorld) deriveRoomID(a, b int64) error {
	w.roomID = domain.RoomID(a, b)
	return nil
}

func (w *messageLogWorld) roomIDShouldBe(expected string) error {
	if w.roomID != expected {
		return fmt.Errorf("room id %q, want %q", w.roomID, expected)
	}
	return nil
}

func (w *messageLogWorld) reversedGivesSame(a, b int64) error {
	return w.roomIDShouldBe(domain.RoomID(a, b))
}

func (w *messageLogWorld) emptyRoom(roomID string) error {
	w.roomID = roomID
	return nil
}

func (w *messageLogWorld) userWrites(uid int64, message, date string) error {
	return w.repo.Append(context.Background(), w.roomID, strconv.FormatInt(uid, 10), date, message)
}

func (w *messageLogWorld) list(roomID string, limit, offset int64) error {
	var err error
	w.results, err = w.repo.List(context.Background(), roomID, limit, offset)
	return err
}

func (w *messageLogWorld) shouldGet(n int) error {
	if w.results == nil {
		return fmt.Errorf("result is nil, want an empty sequence")
	}
	if len(w.results) != n {
		return fmt.Errorf("got %d messages, want %d", len(w.results), n)
	}
	return nil
}

func (w *messageLogWorld) messageShouldBe(i int, writer, message, date string) error {
	want := domain.MessageRecord{Writer: writer, Message: message, Date: date}
	if i >= len(w.results) {
		return fmt.Errorf("no message %d", i)
	}
	if w.results[i] != want {
		return fmt.Errorf("message %d is %+v, want %+v", i, w.results[i], want)
	}
	return nil
}

func initializeMessageLogScenario(ctx *godog.ScenarioContext) {
	w := &messageLogWorld{}
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		w.repo = newMemoryMessageRepository()
		w.roomID = ""
		w.results = nil
		return ctx, nil
	})

	ctx.Step(`^user (\d+) and user (\d+) derive their room id$`, w.deriveRoomID)
	ctx.Step(`^the room id should be "([^"]*)"$`, w.roomIDShouldBe)
	ctx.Step(`^deriving it as user (\d+) and user (\d+) gives the same id$`, w.reversedGivesSame)
	ctx.Step(`^an empty room "([^"]*)"$`, w.emptyRoom)
	ctx.Step(`^user (\d+) writes "([^"]*)" at "([^"]*)"$`, w.userWrites)
	ctx.Step(`^I list room "([^"]*)" with limit (-?\d+) and offset (\d+)$`, w.list)
	ctx.Step(`^I should get (\d+) messages$`, w.shouldGet)
	ctx.Step(`^message (\d+) should be written by "([^"]*)" with "([^"]*)" at "([^"]*)"$`, w.messageShouldBe)
}

func TestMessageLogFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "message_log",
		ScenarioInitializer: initializeMessageLogScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
