package main

import (
	"context"
	"time"

	"ayudamosBack/internal/models"
)

// defaultCategories is the launch taxonomy. Seeding inserts missing rows and
// leaves existing ones alone, so renames done in the database survive
// restarts.
var defaultCategories = []models.Category{
	{Name: "Plomería", Icon: "wrench", Color: "#2563EB", Description: "Reparaciones e instalaciones de agua y gas"},
	{Name: "Electricidad", Icon: "zap", Color: "#F59E0B", Description: "Instalaciones y arreglos eléctricos"},
	{Name: "Construcción", Icon: "hammer", Color: "#78716C", Description: "Obras, refacciones y albañilería"},
	{Name: "Limpieza", Icon: "sparkles", Color: "#10B981", Description: "Limpieza de hogares y oficinas"},
	{Name: "Mecánica", Icon: "car", Color: "#DC2626", Description: "Mecánica automotriz y motos"},
	{Name: "Belleza", Icon: "scissors", Color: "#EC4899", Description: "Peluquería, manicura y estética"},
	{Name: "Pintura", Icon: "paintbrush", Color: "#8B5CF6", Description: "Pintura de interiores y exteriores"},
	{Name: "Jardinería", Icon: "leaf", Color: "#16A34A", Description: "Mantenimiento de jardines y parques"},
}

func (app *application) seedCategories() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.categoryService.SeedCategories(ctx, defaultCategories); err != nil {
		return err
	}
	app.infoLog.Printf("category seed complete (%d categories)", len(defaultCategories))
	return nil
}
