// services/stock_alert_service.go
package services

import (
	"fmt"
	"os"
	"strings"

	"salonflow-backend/models"
	"salonflow-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// StockAlertService sends the manager a daily message listing inventory
// items at or below their reorder point.
type StockAlertService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewStockAlertService(db *gorm.DB) *StockAlertService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &StockAlertService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *StockAlertService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendLowStockAlert()
	})

	c.Start()
	log.Info().Msg("Stock alert scheduler started")
}

// SendLowStockAlert sweeps the inventory and messages the manager when any
// item is out of stock or at its reorder point.
func (s *StockAlertService) SendLowStockAlert() {
	log.Info().Msg("Starting low stock sweep")

	var items []models.InventoryItem
	if err := s.db.Where("stock <= reorder_point").Order("name asc").Find(&items).Error; err != nil {
		log.Error().Err(err).Msg("Failed to fetch inventory for low stock sweep")
		return
	}

	if len(items) == 0 {
		log.Info().Msg("No items below reorder point")
		return
	}

	to := os.Getenv("MANAGER_ALERT_PHONE")
	if to == "" {
		log.Warn().Msg("MANAGER_ALERT_PHONE not set, skipping low stock alert")
		return
	}

	s.sendAlert(to, s.buildMessage(items))
}

func (s *StockAlertService) buildMessage(items []models.InventoryItem) string {
	var b strings.Builder
	b.WriteString("SalonFlow stock alert:\n")
	for _, item := range items {
		if item.Stock == 0 {
			fmt.Fprintf(&b, "- %s (%s): OUT OF STOCK\n", item.Name, item.SKU)
		} else {
			fmt.Fprintf(&b, "- %s (%s): %d %s left, reorder at %d\n",
				item.Name, item.SKU, item.Stock, item.UnitOfMeasure, item.ReorderPoint)
		}
		fmt.Fprintf(&b, "  stock value %s\n", utils.FormatCurrency(item.CostPrice*float64(item.Stock)))
	}
	return b.String()
}

func (s *StockAlertService) sendAlert(to, message string) {
	// WhatsApp if the number is in E.164 format, else SMS
	channel := "sms"
	if strings.HasPrefix(to, "+") {
		to = "whatsapp:" + to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("Failed to send low stock alert")
		return
	}
	if resp.Sid != nil {
		log.Info().Str("sid", *resp.Sid).Str("channel", channel).Msg("Low stock alert sent")
	} else {
		log.Info().Str("channel", channel).Msg("Low stock alert sent, no SID returned")
	}
}
