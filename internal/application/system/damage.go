package system

import (
	"log"

	"github.com/younwookim/boxworld/internal/domain/entity"
	"github.com/younwookim/boxworld/internal/infrastructure/config"
)

// DamageSystem applies cooldown-gated damage to the player
type DamageSystem struct {
	config *config.CombatConfig
	logger *log.Logger

	// Event callbacks
	OnHealthChanged func(health int)
	OnDefeated      func()
}

// NewDamageSystem creates a new damage system
func NewDamageSystem(cfg *config.CombatConfig, logger *log.Logger) *DamageSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &DamageSystem{
		config: cfg,
		logger: logger,
	}
}

// SetConfig swaps the combat tuning
func (s *DamageSystem) SetConfig(cfg *config.CombatConfig) {
	s.config = cfg
}

// Apply subtracts amount from the player's health at simulation time now.
// Calls inside the cooldown window are dropped and report false.
// Health is not clamped; OnDefeated fires only when health crosses from
// positive to zero or below.
func (s *DamageSystem) Apply(p *entity.Player, amount int, now float64) bool {
	if now-p.LastDamageTime < s.config.DamageCooldown {
		return false
	}

	before := p.Health
	p.Health -= amount
	p.LastDamageTime = now
	s.logger.Printf("player took %d damage, health %d", amount, p.Health)

	if s.OnHealthChanged != nil {
		s.OnHealthChanged(p.Health)
	}
	if before > 0 && p.Health <= 0 {
		s.logger.Printf("player defeated")
		if s.OnDefeated != nil {
			s.OnDefeated()
		}
	}
	return true
}
