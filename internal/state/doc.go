// Package state tracks which view exhibit is showing.
//
// # Overview
//
// A Machine holds exactly one State at a time. State is a closed tagged
// union; the variants carry only the data that view needs:
//
//	Idle                     empty form
//	Loading{Attempt, Ticks}  request in flight, rotating message
//	Result{Input, Data}      placard on screen, export enabled
//	Failed{Message}          error panel above the form
//
// Because the variants are separate types there is no way to hold a result
// and an error at the same time.
//
// # Transitions
//
//	Idle    --Submit-->  Loading
//	Failed  --Submit-->  Loading
//	Loading --Succeed--> Result
//	Loading --Fail-->    Failed
//	Result  --Reset-->   Idle
//
// Anything else is refused: Submit while Loading returns ErrBusy, Submit
// from Result and Reset from anywhere but Result return ErrInvalidTransition,
// and blank input returns ErrInvalidInput.
//
// # Attempts
//
// Every Submit bumps a monotonic attempt counter and returns it. Succeed,
// Fail and Tick take that number back and are ignored unless it matches the
// attempt currently loading. The UI tags its request command and its tick
// timer with the attempt, so a reply or tick that outlives its attempt is
// dropped on arrival:
//
//	attempt, err := machine.Submit(input)
//	if err != nil {
//		return err
//	}
//	data, err := generator.Generate(ctx, input)
//	if err != nil {
//		machine.Fail(attempt, exhibit.UserMessage(err))
//	} else {
//		machine.Succeed(attempt, data)
//	}
//
// # Loading Messages
//
// Tick advances the counter of the current Loading state; LoadingMessage
// returns messages[Ticks mod len(messages)]. A new Loading always starts at
// zero, and Tick returns false as soon as the state leaves Loading, which is
// the cue to stop scheduling ticks. TickInterval is 2.5 seconds.
//
// # Concurrency Model
//
// Machine guards its state with a sync.RWMutex so the plain prompt mode can
// complete a request from a worker goroutine while the main goroutine reads.
// Under Bubble Tea all calls happen on the update loop anyway. State returns
// values, never pointers into the Machine.
//
// The zero Machine is usable and starts in Idle, but has no loading messages;
// use NewMachine to get the default list.
package state
