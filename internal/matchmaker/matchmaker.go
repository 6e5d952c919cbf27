package matchmaker

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/arena"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/engine"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/logging"
)

// startPositionPresets are the symmetric starting position pairs, one of
// which is chosen uniformly per battle.
var startPositionPresets = [][2]int{{4, 5}, {3, 6}, {2, 7}}

// Notifier delivers matchmaking events to a combatant's transport side.
// Delivery is fire-and-forget: the matchmaker never blocks on it.
type Notifier interface {
	// VerifyOpponent asks a side to confirm it knows the opponent's setup.
	VerifyOpponent(pilotID string, opponentFingerprint string, opponentSetup game.Loadout)
	// BattleStarted hands both sides the created battle.
	BattleStarted(pilotID string, b *game.Battle)
	// BattleEnded reports a battle force-quit caused by the opponent.
	BattleEnded(pilotID string, b *game.Battle)
}

// Entry is a waiting combatant plus its loadout fingerprint.
type Entry struct {
	Combatant   *game.Combatant
	Fingerprint string
}

// side tracks one half of a pending validation. accepted is tri-state:
// nil until the side answers.
type side struct {
	entry    *Entry
	accepted *bool
}

type validation struct {
	a side
	b side
}

func (v *validation) sideOf(pilotID string) (*side, *side) {
	if v.a.entry.Combatant.ID == pilotID {
		return &v.a, &v.b
	}
	if v.b.entry.Combatant.ID == pilotID {
		return &v.b, &v.a
	}
	return nil, nil
}

// Service owns the waiting queue and the pending validation records. All
// mutation happens under a single mutex, so no two pairing attempts can
// interleave: queue scan, removal and validation-record creation are one
// non-preemptible step.
type Service struct {
	mu          sync.Mutex
	queue       []*Entry
	validations []*validation
	dontMatch   map[string]map[string]bool

	registry *arena.Registry
	notifier Notifier
	rng      engine.Rand
}

func NewService(registry *arena.Registry, notifier Notifier, rng engine.Rand) *Service {
	return &Service{
		dontMatch: map[string]map[string]bool{},
		registry:  registry,
		notifier:  notifier,
		rng:       rng,
	}
}

// Join puts a combatant into the waiting queue and immediately attempts a
// pairing. Joining while queued or validating is a no-op; joining while in
// a battle force-quits that battle first.
func (s *Service) Join(e *Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.join(e)
}

func (s *Service) join(e *Entry) {
	id := e.Combatant.ID

	if s.findValidation(id) != nil || s.queued(id) {
		return
	}

	if b := s.registry.ForceQuit(id); b != nil {
		if opp := b.Opponent(id); opp != nil {
			s.notifier.BattleEnded(opp.ID, b)
		}
	}

	s.queue = append(s.queue, e)
	logging.Info("pilot joined match maker", logging.Fields{constants.LogFieldPilotID: id})
	s.matchMake(e)
}

// Leave removes a combatant from the queue, or cancels its pending
// validation. An opponent that had already accepted goes back into the
// queue; otherwise the opponent is unaffected.
func (s *Service) Leave(pilotID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.queue {
		if e.Combatant.ID == pilotID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			logging.Info("pilot left match maker", logging.Fields{constants.LogFieldPilotID: pilotID})
			return
		}
	}

	v := s.findValidation(pilotID)
	if v == nil {
		return
	}
	_, opp := v.sideOf(pilotID)
	s.removeValidation(v)
	if opp.accepted != nil && *opp.accepted {
		s.join(opp.entry)
	}
}

// SubmitValidation records one side's accept/reject answer. Acceptance is
// order-independent: accepting when the opponent already accepted creates
// the battle immediately, accepting first just waits. A rejection puts the
// opponent on the rejecter's skip list and returns the rejecter (and an
// opponent that had already accepted) to the queue.
func (s *Service) SubmitValidation(pilotID string, accepted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.findValidation(pilotID)
	if v == nil {
		// Stale answer: the opponent already rejected or quit.
		logging.Warn("validation answer without a pending record", logging.Fields{constants.LogFieldPilotID: pilotID})
		return
	}

	self, opp := v.sideOf(pilotID)

	if accepted {
		if opp.accepted != nil && *opp.accepted {
			s.removeValidation(v)
			s.startBattle(self.entry, opp.entry)
			return
		}
		yes := true
		self.accepted = &yes
		return
	}

	// The setups don't match on this side's client; never pair these two
	// again.
	s.skip(pilotID, opp.entry.Combatant.ID)
	s.removeValidation(v)
	s.join(self.entry)
	if opp.accepted != nil && *opp.accepted {
		s.join(opp.entry)
	}
}

// IsQueued reports whether a combatant is in the waiting queue.
func (s *Service) IsQueued(pilotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queued(pilotID)
}

// IsValidating reports whether a combatant is in a pending validation.
func (s *Service) IsValidating(pilotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findValidation(pilotID) != nil
}

func (s *Service) queued(pilotID string) bool {
	for _, e := range s.queue {
		if e.Combatant.ID == pilotID {
			return true
		}
	}
	return false
}

func (s *Service) findValidation(pilotID string) *validation {
	for _, v := range s.validations {
		if a, _ := v.sideOf(pilotID); a != nil {
			return v
		}
	}
	return nil
}

func (s *Service) removeValidation(v *validation) {
	for i, vv := range s.validations {
		if vv == v {
			s.validations = append(s.validations[:i], s.validations[i+1:]...)
			return
		}
	}
}

func (s *Service) skip(pilotID, opponentID string) {
	if s.dontMatch[pilotID] == nil {
		s.dontMatch[pilotID] = map[string]bool{}
	}
	s.dontMatch[pilotID][opponentID] = true
}

func (s *Service) skipped(a, b string) bool {
	return s.dontMatch[a][b] || s.dontMatch[b][a]
}

// matchMake scans the queue for the first compatible opponent: identical
// loadout fingerprint and neither side on the other's skip list. A match
// removes both entries and opens a validation round-trip.
func (s *Service) matchMake(e *Entry) {
	id := e.Combatant.ID

	for _, opponent := range s.queue {
		oppID := opponent.Combatant.ID
		if oppID == id {
			continue
		}
		if opponent.Fingerprint != e.Fingerprint {
			continue
		}
		if s.skipped(id, oppID) {
			continue
		}

		s.removeFromQueue(id)
		s.removeFromQueue(oppID)
		s.validateEachOther(e, opponent)
		return
	}
}

func (s *Service) removeFromQueue(pilotID string) {
	for i, e := range s.queue {
		if e.Combatant.ID == pilotID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

func (s *Service) validateEachOther(a, b *Entry) {
	s.validations = append(s.validations, &validation{a: side{entry: a}, b: side{entry: b}})
	s.notifier.VerifyOpponent(a.Combatant.ID, b.Fingerprint, b.Combatant.Items)
	s.notifier.VerifyOpponent(b.Combatant.ID, a.Fingerprint, a.Combatant.Items)
}

func (s *Service) startBattle(a, b *Entry) {
	positions := startPositionPresets[s.rng.Intn(len(startPositionPresets))]
	a.Combatant.Position = positions[0]
	b.Combatant.Position = positions[1]

	starterID := a.Combatant.ID
	if s.rng.Intn(2) == 1 {
		starterID = b.Combatant.ID
	}

	battle := game.NewBattle(uuid.NewString(), a.Combatant, b.Combatant, starterID)
	s.registry.Add(battle)

	logging.Info("battle created", logging.Fields{
		constants.LogFieldBattleID: battle.ID,
		"p1":                       a.Combatant.ID,
		"p2":                       b.Combatant.ID,
	})

	s.notifier.BattleStarted(a.Combatant.ID, battle)
	s.notifier.BattleStarted(b.Combatant.ID, battle)
}
