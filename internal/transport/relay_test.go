package transport

import "testing"

func TestRelayFanOut(t *testing.T) {
	r := NewRelay()
	a, cancelA := r.Subscribe()
	b, cancelB := r.Subscribe()
	defer cancelA()
	defer cancelB()

	r.Publish([]byte("one"))
	r.Publish([]byte("two"))

	for _, ch := range []<-chan []byte{a, b} {
		if got := string(<-ch); got != "one" {
			t.Fatalf("first frame = %q, want one", got)
		}
		if got := string(<-ch); got != "two" {
			t.Fatalf("second frame = %q, want two", got)
		}
	}
}

func TestRelaySlowSubscriberIsDropped(t *testing.T) {
	r := NewRelay()
	slow, cancelSlow := r.Subscribe()
	defer cancelSlow()

	// Nobody reads slow, so it fills up and gets cut loose.
	for i := 0; i <= subscriberBuffer; i++ {
		r.Publish([]byte("frame"))
	}

	// Drain the slow channel; it must end closed, not blocked.
	n := 0
	for range slow {
		n++
	}
	if n != subscriberBuffer {
		t.Errorf("slow subscriber drained %d frames, want %d", n, subscriberBuffer)
	}

	// Dropping one subscriber does not hurt the relay.
	fresh, cancelFresh := r.Subscribe()
	defer cancelFresh()
	r.Publish([]byte("still here"))
	if got := string(<-fresh); got != "still here" {
		t.Errorf("fresh subscriber got %q", got)
	}
}

func TestRelayCancel(t *testing.T) {
	r := NewRelay()
	ch, cancel := r.Subscribe()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("cancelled channel should be closed")
	}

	// Publishing after cancel must not panic on the closed channel.
	r.Publish([]byte("frame"))
	cancel() // idempotent
}

func TestRelayClose(t *testing.T) {
	r := NewRelay()
	a, cancelA := r.Subscribe()
	b, _ := r.Subscribe()

	r.Close()
	r.Close() // idempotent

	for name, ch := range map[string]<-chan []byte{"a": a, "b": b} {
		if _, ok := <-ch; ok {
			t.Errorf("subscriber %s still open after relay close", name)
		}
	}

	// All of these are no-ops on a closed relay.
	r.Publish([]byte("frame"))
	cancelA()
	late, cancelLate := r.Subscribe()
	defer cancelLate()
	if _, ok := <-late; ok {
		t.Error("subscribing to a closed relay should yield a closed channel")
	}
}
