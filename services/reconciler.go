// services/reconciler.go
package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"salondesk-backend/models"
)

// Reconciler sweeps the ledger for confirmed appointments whose reserved
// slot no longer exists. Such orphans appear when a compensating delete
// fails mid-booking; the sweep marks them cancelled so they stop looking
// like live bookings.
type Reconciler struct {
	db *gorm.DB
}

func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{db: db}
}

func (r *Reconciler) StartScheduler() {
	c := cron.New()

	// Run nightly at 03:30, before the day's booking traffic
	c.AddFunc("30 3 * * *", func() {
		r.Sweep()
	})

	c.Start()
	log.Println("Appointment reconciler started")
}

// Sweep finds and cancels orphaned appointments. Returns how many were
// reconciled.
func (r *Reconciler) Sweep() int {
	var orphans []models.Appointment
	err := r.db.
		Where("status = ?", models.AppointmentConfirmed).
		Where("id NOT IN (?)", r.db.Model(&models.Slot{}).
			Select("appointment_id").
			Where("state = ? AND appointment_id IS NOT NULL", models.SlotReserved)).
		Find(&orphans).Error
	if err != nil {
		log.Printf("Reconciler: failed to list orphaned appointments: %v", err)
		return 0
	}

	reconciled := 0
	for _, appt := range orphans {
		if err := r.db.Model(&models.Appointment{}).
			Where("id = ?", appt.ID).
			Update("status", models.AppointmentCancelled).Error; err != nil {
			log.Printf("Reconciler: failed to cancel orphan %s: %v", appt.ID, err)
			continue
		}
		log.Printf("Reconciler: cancelled orphaned appointment %s (salon %s, client %s)",
			appt.ID, appt.SalonID, appt.ClientName)
		reconciled++
	}

	if reconciled > 0 {
		log.Printf("Reconciler: reconciled %d orphaned appointments", reconciled)
	}
	return reconciled
}
