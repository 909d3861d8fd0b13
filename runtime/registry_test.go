package runtime

import (
	"breakout-lab/contract"
	"breakout-lab/domain"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Sink struct {
	name string
}

func (s Sink) Consume(ctx context.Context, d domain.Digest) error {
	return nil
}

func TestRegistry_Subscribe_One_Recipient_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	recipient := "alice"
	connectionID := uuid.NewString()
	sink := Sink{name: "laptop"}

	// Given nobody is connected
	req.Empty(registry.subscriptions)
	req.Empty(registry.recipients)

	// When a recipient subscribes
	registry.Subscribe(recipient, connectionID, sink)

	// Then
	req.Len(registry.subscriptions, 1)
	req.Equal(sink, registry.subscriptions[connectionID].sink)

	req.Len(registry.recipients, 1)
	req.Contains(registry.recipients[recipient], connectionID)

	req.Len(registry.GetSinks(recipient), 1)
	req.Contains(registry.GetSinks(recipient), sink)
}

func TestRegistry_Subscribe_One_Recipient_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID1 := uuid.NewString()
	connectionID2 := uuid.NewString()
	sink1 := Sink{name: "laptop"}
	sink2 := Sink{name: "phone"}

	// When the same recipient connects twice
	registry.Subscribe("alice", connectionID1, sink1)
	registry.Subscribe("alice", connectionID2, sink2)

	// Then both sinks are reachable
	req.Len(registry.subscriptions, 2)
	req.Len(registry.recipients["alice"], 2)

	req.Len(registry.GetSinks("alice"), 2)
	req.Contains(registry.GetSinks("alice"), sink1)
	req.Nil(registry.GetSinks("bob"))
}

func TestRegistry_Unsubscribe_Last_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()

	// Given a recipient is connected
	registry.Subscribe("alice", connectionID, Sink{})

	// When the connection goes away
	registry.Unsubscribe("alice", connectionID)

	// Then nothing is left behind
	req.Empty(registry.subscriptions)
	req.Empty(registry.recipients)
	req.Nil(registry.GetSinks("alice"))
}

func TestRegistry_Unsubscribe_One_Of_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID1 := uuid.NewString()
	connectionID2 := uuid.NewString()
	sink2 := Sink{name: "phone"}

	registry.Subscribe("alice", connectionID1, Sink{name: "laptop"})
	registry.Subscribe("alice", connectionID2, sink2)

	// When one connection goes away
	registry.Unsubscribe("alice", connectionID1)

	// Then only the other one is left
	req.Len(registry.subscriptions, 1)
	req.Len(registry.recipients["alice"], 1)
	req.Len(registry.GetSinks("alice"), 1)
	req.Contains(registry.GetSinks("alice"), sink2)
}

func TestRegistry_Sinks_Ordered_By_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.Subscribe("alice", "conn-c", Sink{name: "tablet"})
	registry.Subscribe("alice", "conn-a", Sink{name: "laptop"})
	registry.Subscribe("alice", "conn-b", Sink{name: "phone"})

	req.Equal([]contract.NotificationSink{Sink{name: "laptop"}, Sink{name: "phone"}, Sink{name: "tablet"}},
		registry.GetSinks("alice"))
}

func TestRegistry_Connection_Moves_To_New_Recipient(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()

	// Given a shared device was used by alice
	registry.Subscribe("alice", connectionID, Sink{name: "kiosk"})

	// When bob logs in on it
	registry.Subscribe("bob", connectionID, Sink{name: "kiosk"})

	// Then alice no longer receives anything through it
	req.Nil(registry.GetSinks("alice"))
	req.Len(registry.GetSinks("bob"), 1)
	req.Len(registry.recipients, 1)

	// And a late unsubscribe for alice leaves bob connected
	registry.Unsubscribe("alice", connectionID)
	req.Len(registry.GetSinks("bob"), 1)
}
