package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hospsys/patient-registry/internal/config"
	"github.com/hospsys/patient-registry/internal/logging"
	"github.com/hospsys/patient-registry/internal/models"
	"github.com/hospsys/patient-registry/internal/store"
)

// SeedPatients contains sample records for a development database
var SeedPatients = []models.PatientIdentity{
	{
		FirstName:   "João",
		LastName:    "Silva",
		DateOfBirth: "1990-05-10",
		MotherName:  "Maria Silva",
		CPF:         "52998224725",
		Gender:      models.GenderMale,
		RaceColor:   models.RaceColorBrown,
		Phone:       "21987654321",
	},
	{
		FirstName:   "Joana",
		LastName:    "Souza",
		DateOfBirth: "1985-03-20",
		MotherName:  "Antônia Souza",
		CNS:         "152601815908304",
		Gender:      models.GenderFemale,
		RaceColor:   models.RaceColorWhite,
	},
	{
		FirstName:          "Pedro",
		LastName:           "Santos",
		DateOfBirth:        "1970-11-02",
		MotherName:         "Ana Santos",
		CPF:                "11144477735",
		CNS:                "262819482199303",
		Gender:             models.GenderMale,
		RaceColor:          models.RaceColorWhite,
		HasHealthInsurance: true,
		InsuranceProvider:  "Unimed",
		InsuranceNumber:    "0012345678",
	},
}

func main() {
	if err := logging.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	config.InitMongoDB()

	ctx := context.Background()
	collection := config.MongoDB.Collection(config.AppConfig.PatientCollection)
	patientStore := store.NewMongoPatientStore(collection, config.AppConfig.StoreTimeout, config.AppConfig.DedupMaxResults, logging.Logger)

	seeded := 0
	for _, identity := range SeedPatients {
		record, err := patientStore.Create(ctx, identity)
		if err != nil {
			log.Printf("skipping %s %s: %v", identity.FirstName, identity.LastName, err)
			continue
		}
		fmt.Printf("seeded %s %s (%s)\n", identity.FirstName, identity.LastName, record.ID)
		seeded++
	}
	fmt.Printf("done: %d of %d records seeded\n", seeded, len(SeedPatients))
}
