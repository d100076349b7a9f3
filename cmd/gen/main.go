package main

import (
	"rescue/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.MerchantModel{},
		model.OfferModel{},
		model.ReservationModel{},
		model.NotificationModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
