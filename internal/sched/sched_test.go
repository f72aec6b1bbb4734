package sched

import "testing"

func TestAfterFiresAtDue(t *testing.T) {
	s := New()
	fired := 0
	s.After(3, func() { fired++ })

	s.Tick()
	s.Tick()
	if fired != 0 {
		t.Fatalf("task fired early, fired=%d", fired)
	}

	s.Tick()
	if fired != 1 {
		t.Fatalf("task should fire on tick 3, fired=%d", fired)
	}

	// Never fires again
	s.Tick()
	if fired != 1 {
		t.Errorf("task fired twice")
	}
}

func TestCancelPreventsFiring(t *testing.T) {
	s := New()
	fired := false
	task := s.After(2, func() { fired = true })

	task.Cancel()
	if task.Pending() {
		t.Error("cancelled task should not be pending")
	}

	s.Tick()
	s.Tick()
	s.Tick()
	if fired {
		t.Error("cancelled task must not fire")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}

	// Cancel is idempotent
	task.Cancel()
}

func TestZeroDelayRoundsUp(t *testing.T) {
	s := New()
	fired := false
	s.After(0, func() { fired = true })

	s.Tick()
	if !fired {
		t.Error("zero-delay task should fire on the next tick")
	}
}

func TestRearmDuringDispatchRunsLater(t *testing.T) {
	s := New()
	var order []int
	s.After(1, func() {
		order = append(order, 1)
		s.After(1, func() { order = append(order, 2) })
	})

	s.Tick()
	if len(order) != 1 || order[0] != 1 {
		t.Fatalf("re-armed task must not run in the same tick, order=%v", order)
	}

	s.Tick()
	if len(order) != 2 || order[1] != 2 {
		t.Fatalf("re-armed task should run on the following tick, order=%v", order)
	}
}

func TestCancelDuringDispatch(t *testing.T) {
	s := New()
	var second *Task
	secondFired := false

	s.After(1, func() {
		second.Cancel()
	})
	second = s.After(1, func() { secondFired = true })

	s.Tick()
	if secondFired {
		t.Error("a task cancelled earlier in the same tick must not fire")
	}
}

func TestDispatchOrderIsSchedulingOrder(t *testing.T) {
	s := New()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		s.After(1, func() { order = append(order, i) })
	}

	s.Tick()
	for i, v := range order {
		if v != i {
			t.Fatalf("dispatch order %v is not scheduling order", order)
		}
	}
}

func TestPendingCount(t *testing.T) {
	s := New()
	a := s.After(5, func() {})
	s.After(10, func() {})

	if s.Pending() != 2 {
		t.Fatalf("Pending() = %d, expected 2", s.Pending())
	}

	a.Cancel()
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d after cancel, expected 1", s.Pending())
	}

	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.Pending() != 0 {
		t.Fatalf("Pending() = %d after all fired, expected 0", s.Pending())
	}
}
