package localstore

import (
	"context"
	"time"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/kvstore"
	"emplealocal-backend/pkg/logger"
)

// Seed writes the demo accounts and postings on first run. Each collection
// is only seeded while empty, so calling Seed repeatedly is harmless.
func Seed(ctx context.Context, store kvstore.Store) error {
	if err := seedUsers(ctx, store); err != nil {
		return err
	}
	return seedJobs(ctx, store)
}

func seedUsers(ctx context.Context, store kvstore.Store) error {
	users, err := readCollection[domain.User](ctx, store, keyUsers)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	now := time.Now().UTC()
	demo := []domain.User{
		{
			ID:        "user_employer_1",
			Email:     "empleador@test.com",
			Password:  "123456",
			Name:      "Juan Pérez",
			Type:      domain.UserTypeEmployer,
			Company:   "Comercial Coracora",
			CreatedAt: now,
		},
		{
			ID:        "user_applicant_1",
			Email:     "postulante@test.com",
			Password:  "123456",
			Name:      "María García",
			Type:      domain.UserTypeApplicant,
			Company:   "",
			CreatedAt: now,
		},
	}

	if err := writeCollection(ctx, store, keyUsers, demo); err != nil {
		return err
	}
	logger.Log.Info("demo users created", "count", len(demo))
	return nil
}

func seedJobs(ctx context.Context, store kvstore.Store) error {
	jobs, err := readCollection[domain.Job](ctx, store, keyJobs)
	if err != nil {
		return err
	}
	if len(jobs) > 0 {
		return nil
	}

	now := time.Now().UTC()
	day := 24 * time.Hour
	demo := []domain.Job{
		{
			ID:           "job_1",
			Title:        "Auxiliar de Ventas",
			Description:  "Buscamos persona proactiva para atención al cliente en tienda de ropa. Experiencia en ventas deseable.",
			Category:     "comercio",
			Location:     "Barrio Central, Coracora",
			Salary:       "S/1,200 - S/1,500",
			Type:         "Tiempo Completo",
			Requirements: "- Secundaria completa\n- Experiencia mínima 6 meses\n- Buena presencia\n- Don de gente",
			EmployerID:   "user_employer_1",
			EmployerName: "Juan Pérez",
			Company:      "Comercial Coracora",
			Status:       domain.JobStatusActive,
			CreatedAt:    now,
		},
		{
			ID:           "job_2",
			Title:        "Obrero de Construcción",
			Description:  "Se necesita personal para obra de construcción. Trabajo en equipo, responsable y puntual.",
			Category:     "construccion",
			Location:     "Chihuacc, Coracora",
			Salary:       "S/1,500 - S/1,800",
			Type:         "Por Proyecto",
			Requirements: "- Experiencia en construcción\n- Disponibilidad inmediata\n- Trabajo en altura",
			EmployerID:   "user_employer_1",
			EmployerName: "Juan Pérez",
			Company:      "Constructora Andes",
			Status:       domain.JobStatusActive,
			CreatedAt:    now.Add(-1 * day),
		},
		{
			ID:           "job_3",
			Title:        "Docente de Primaria",
			Description:  "Institución educativa requiere docente de primaria con vocación de servicio y experiencia.",
			Category:     "educacion",
			Location:     "Centro de Coracora",
			Salary:       "S/2,000 - S/2,500",
			Type:         "Tiempo Completo",
			Requirements: "- Título pedagógico\n- Experiencia mínima 2 años\n- Manejo de herramientas digitales",
			EmployerID:   "user_employer_1",
			EmployerName: "Juan Pérez",
			Company:      "I.E. San Pedro",
			Status:       domain.JobStatusActive,
			CreatedAt:    now.Add(-2 * day),
		},
		{
			ID:           "job_4",
			Title:        "Soporte Técnico",
			Description:  "Empresa de tecnología busca técnico en sistemas para soporte y mantenimiento de equipos.",
			Category:     "tecnologia",
			Location:     "Coracora (Remoto posible)",
			Salary:       "S/1,800 - S/2,200",
			Type:         "Remoto",
			Requirements: "- Conocimientos en hardware y software\n- Experiencia en redes\n- Disponibilidad para viajes ocasionales",
			EmployerID:   "user_employer_1",
			EmployerName: "Juan Pérez",
			Company:      "TechSolutions",
			Status:       domain.JobStatusActive,
			CreatedAt:    now.Add(-3 * day),
		},
		{
			ID:           "job_5",
			Title:        "Conductor de Delivery",
			Description:  "Restaurante local necesita conductor con moto para entregas. Horario flexible.",
			Category:     "transporte",
			Location:     "Coracora",
			Salary:       "S/900 + comisiones",
			Type:         "Medio Tiempo",
			Requirements: "- Licencia de conducir vigente\n- Moto propia\n- Conocer la zona\n- Puntualidad",
			EmployerID:   "user_employer_1",
			EmployerName: "Juan Pérez",
			Company:      "Restaurant El Sabor",
			Status:       domain.JobStatusActive,
			CreatedAt:    now.Add(-4 * day),
		},
	}

	if err := writeCollection(ctx, store, keyJobs, demo); err != nil {
		return err
	}
	logger.Log.Info("demo jobs created", "count", len(demo))
	return nil
}
