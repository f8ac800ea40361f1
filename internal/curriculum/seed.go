package curriculum

// Combatives curriculum, lessons 1-15. Reflex drill and fight
// simulation scripts reference other lessons with "(L<n>)" markers;
// variation names inside a script select specific variations, and the
// "all variations" / "all stages" phrases select every variation of
// the referenced lesson.
func seedTechniques() []Technique {
	return []Technique{
		{
			ID: "m-l1", LessonNumber: 1, Name: "Trap & Roll Escape", Category: CategoryMount, DrillGroup: 1,
			Variations: []Variation{
				{ID: "v1", Name: "Standard Variation"},
				{ID: "v2", Name: "Punch Block Variation"},
				{ID: "v3", Name: "Headlock Variation"},
				{ID: "v4", Name: "Open Guard Pass"},
			},
			ReflexDrill: "Practice all variations of the Trap and Roll Escape – Mount (L1)",
			FightSimSteps: []string{
				"Trap and Roll Escape – Mount – Headlock Variation (L1)",
				"Positional Control – Mount – Low Swim (L3)",
				"Americana Armlock – Mount – Neck-hug Variation (L2)",
			},
			Children: []string{"m-l3"},
		},
		{
			ID: "m-l2", LessonNumber: 2, Name: "Americana Armlock", Category: CategoryMount, DrillGroup: 1,
			Variations: []Variation{
				{ID: "v1", Name: "Basic Application"},
				{ID: "v2", Name: "Standard Variation"},
				{ID: "v3", Name: "Neck-Hug Variation"},
			},
			ReflexDrill: "Practice all variations of the Trap and Roll Escape – Mount (L1) In combination with all variations of the Americana Armlock – Mount (L2)",
			FightSimSteps: []string{
				"Trap and Roll Escape – Mount – Punch Block Variation (L1)",
				"Positional Control – Mount – High Swim (L3)",
				"Take the Back – Mount – Remount Technique (L4)",
				"Americana Armlock – Mount – Standard Variation (L2)",
			},
			Parents: []string{"m-l3"},
		},
		{
			ID: "m-l3", LessonNumber: 3, Name: "Positional Control", Category: CategoryMount, DrillGroup: 1,
			Variations: []Variation{
				{ID: "v1", Name: "Hips and Hands"},
				{ID: "v2", Name: "Anchor and Base"},
				{ID: "v3", Name: "Low Swim"},
				{ID: "v4", Name: "High Swim"},
			},
			ReflexDrill: "Practice all variations of Positional Control – Mount (L3) In combination with all variations of the Americana Armlock – Mount (L2)",
			FightSimSteps: []string{
				"Trap and Roll Escape – Mount – Headlock Variation (L1)",
				"Positional Control – Mount – Low Swim (L3)",
				"Americana Armlock – Mount – Neck-hug Variation (L2)",
			},
			Parents:  []string{"m-l1", "m-l6", "g-l11", "sm-l13", "st-l14"},
			Children: []string{"m-l2", "m-l4", "m-l9", "m-l12"},
		},
		{
			ID: "m-l4", LessonNumber: 4, Name: "Take the Back", Category: CategoryMount, DrillGroup: 1,
			Variations: []Variation{
				{ID: "v1", Name: "Take the Back"},
				{ID: "v2", Name: "Remount Technique"},
			},
			ReflexDrill: "Practice all variations of Positional Control – Mount (L3) In combination with all variations of Take the Back – Mount (L4)",
			FightSimSteps: []string{
				"Trap and Roll Escape – Mount – Punch Block Variation (L1)",
				"Positional Control – Mount – High Swim (L3)",
				"Take the Back – Mount – Remount Technique (L4)",
				"Americana Armlock – Mount – Standard Variation (L2)",
			},
			Parents:  []string{"m-l3"},
			Children: []string{"m-l5"},
		},
		{
			ID: "m-l5", LessonNumber: 5, Name: "Rear Naked Choke", Category: CategoryMount, DrillGroup: 1,
			Variations: []Variation{
				{ID: "v1", Name: "Basic Application"},
				{ID: "v2", Name: "Strong Side Variation"},
				{ID: "v3", Name: "Weak Side Variation"},
			},
			ReflexDrill: "Practice all variations of Take the Back – Mount (L4) In combination with all variations of the Rear Naked Choke – Back Mount (L5)",
			FightSimSteps: []string{
				"Trap and Roll Escape – Mount – Standard Variation (L1)",
				"Positional Control – Mount – High Swim (L3)",
				"Take the Back – Mount (L4)",
				"Rear Naked Choke – Back Mount – Weak Side Variation (L5)",
			},
			Parents: []string{"m-l4"},
		},
		{
			ID: "m-l6", LessonNumber: 6, Name: "Leg Hook Takedown", Category: CategoryStanding, DrillGroup: 4,
			Variations: []Variation{
				{ID: "v1", Name: "Clinch Control"},
				{ID: "v2", Name: "Leg Hook Takedown"},
			},
			ReflexDrill: "Practice the Leg Hook Takedown – Standing (L6) In combination with all variations of Positional Control – Mount (L3)",
			FightSimSteps: []string{
				"Leg Hook Takedown – Standing (L6)",
				"Take the Back – Mount (L4)",
				"Rear Naked Choke – Back Mount – Strong Side Variation (L5)",
				"Remount Technique – Back Mount (L4)",
				"Americana Armlock – Mount – Neck-hug Variation (L2)",
			},
			Parents:  []string{"m-l7", "st-l15"},
			Children: []string{"m-l3"},
		},
		{
			ID: "m-l7", LessonNumber: 7, Name: "Clinch (Aggressive)", Category: CategoryStanding, DrillGroup: 4,
			Variations: []Variation{
				{ID: "v1", Name: "Keep the Distance"},
				{ID: "v2", Name: "Close the Distance"},
			},
			ReflexDrill: "Practice the Clinch (Aggressive Opponent) – Standing (L7) In combination with the Leg Hook Takedown – Standing (L6)",
			FightSimSteps: []string{
				"Clinch – Standing – Aggressive Opponent (L7)",
				"Leg Hook Takedown – Standing (L6)",
				"Positional Control – Mount – Low Swim (L3)",
				"Americana Armlock – Mount – Standard Variation (L2)",
				"Take the Back – Mount (L4)",
				"Rear Naked Choke – Back Mount – Weak Side Variation (L5)",
			},
			Children: []string{"m-l6", "st-l14"},
		},
		{
			ID: "m-l8", LessonNumber: 8, Name: "Punch Block Series (1-4)", Category: CategoryGuard, DrillGroup: 2,
			Variations: []Variation{
				{ID: "v1", Name: "Stage 1"},
				{ID: "v2", Name: "Stage 2"},
				{ID: "v3", Name: "Stage 3"},
				{ID: "v4", Name: "Stage 4"},
			},
			ReflexDrill: "Practice all variations of the Americana Armlock – Mount (L2) In combination with all variations of the Punch Block Series – Guard (L8)",
			FightSimSteps: []string{
				"Clinch – Standing – Aggressive Opponent (L7)",
				"Leg Hook Takedown – Standing (L6)",
				"Take the Back – Mount (L4)",
				"Rear Naked Choke – Back Mount – Strong Side Variation (L5)",
				"Punch Block Series – Guard – All Stages (L8)",
			},
			Parents:  []string{"m-l12"},
			Children: []string{"m-l10", "g-l11"},
		},
		{
			ID: "m-l9", LessonNumber: 9, Name: "Armbar (Straight Armlock)", Category: CategoryMount, DrillGroup: 1,
			Variations: []Variation{
				{ID: "v1", Name: "Final Control"},
				{ID: "v2", Name: "Standard Variation"},
				{ID: "v3", Name: "Side Variation"},
			},
			ReflexDrill: "Practice all variations of the Trap and Roll Escape – Mount (L1) In combination with all variations of the Straight Armlock – Mount (L9)",
			FightSimSteps: []string{
				"Clinch – Standing – Aggressive Opponent (L7)",
				"Leg Hook Takedown – Standing (L6)",
				"Positional Control – Mount – High Swim (L3)",
				"Take the Back – Mount – Remount Technique (L4)",
				"Straight Armlock – Mount – Side Variation (L9)",
			},
			Parents: []string{"m-l3"},
		},
		{
			ID: "m-l10", LessonNumber: 10, Name: "Triangle Choke", Category: CategoryGuard, DrillGroup: 2,
			Variations: []Variation{
				{ID: "v1", Name: "Triangle Finish"},
				{ID: "v2", Name: "Stage 1.5 Variation"},
				{ID: "v3", Name: "Giant Killer Variation"},
			},
			ReflexDrill: "Practice all variations of the Punch Block Series (Stages 1-4) – Guard (L8) In combination with all variations of the Triangle Choke – Guard (L10)",
			FightSimSteps: []string{
				"Trap and Roll Escape – Mount – Punch Block Variation (L1)",
				"Positional Control – Mount – Anchor and Base (L3)",
				"Straight Armlock – Mount – Standard Variation (L9)",
				"Punch Block Series – Guard – Stages 1-4-1 (L8)",
				"Triangle Choke – Guard – Stage 1.5 Variation (L10)",
			},
			Parents: []string{"m-l8"},
		},
		{
			ID: "g-l11", LessonNumber: 11, Name: "Elevator Sweep", Category: CategoryGuard, DrillGroup: 2,
			Variations: []Variation{
				{ID: "v1", Name: "Standard Variation"},
				{ID: "v2", Name: "Headlock Variation"},
			},
			ReflexDrill: "Practice all variations of the Elevator Sweep – Guard (L11) In combination with all variations of the Straight Armlock – Mount (L9)",
			FightSimSteps: []string{
				"Clinch – Standing – Aggressive Opponent (L7)",
				"Leg Hook Takedown – Standing (L6)",
				"Punch Block Series – Guard – Stages 1-3-4-1 (L8)",
				"Elevator Sweep – Guard – Headlock Variation (L11)",
				"Straight Armlock – Mount – Side Variation (L9)",
			},
			Parents:  []string{"m-l8"},
			Children: []string{"m-l3"},
		},
		{
			ID: "m-l12", LessonNumber: 12, Name: "Elbow Escape", Category: CategoryMount, DrillGroup: 1,
			Variations: []Variation{
				{ID: "v1", Name: "Shrimp Drill"},
				{ID: "v2", Name: "Standard Elbow Escape"},
				{ID: "v3", Name: "Hook Removal"},
				{ID: "v4", Name: "Fish Hook"},
				{ID: "v5", Name: "Heel Drag"},
			},
			ReflexDrill: "Practice all variations of the Elbow Escape – Mount (L12) In combination with all variations of the Triangle Choke – Guard (L10)",
			FightSimSteps: []string{
				"Elbow Escape – Mount – Hook Removal (L12)",
				"Punch Block Series – Guard – Stages 1-2-1 (L8)",
				"Elevator Sweep – Guard – Standard Variation (L11)",
				"Take the Back – Mount (L4)",
				"Rear Naked Choke – Back Mount – Weak Side Variation (L5)",
			},
			Parents:  []string{"m-l3"},
			Children: []string{"m-l8"},
		},
		{
			ID: "sm-l13", LessonNumber: 13, Name: "Positional Control", Category: CategorySideMount, DrillGroup: 3,
			Variations: []Variation{
				{ID: "v1", Name: "Roll Prevention"},
				{ID: "v2", Name: "Guard Prevention"},
				{ID: "v3", Name: "Mount Transition"},
			},
			ReflexDrill: "Practice all variations of Positional Control – Side Mount (L13) In combination with all variations of Positional Control – Mount (L3)",
			FightSimSteps: []string{
				"Positional Control – Side Mount – Roll Prevention (L13)",
				"Americana Armlock – Mount – Neck-hug Variation (L2)",
				"Punch Block Series – Guard – Stages 1-2-4-1 (L8)",
				"Elevator Sweep – Guard – Headlock Variation (L11)",
				"Straight Armlock – Mount – Standard Variation (L9)",
			},
			Children: []string{"m-l3"},
		},
		{
			ID: "st-l14", LessonNumber: 14, Name: "Body Fold Takedown", Category: CategoryStanding, DrillGroup: 4,
			Variations: []Variation{
				{ID: "v1", Name: "Body Fold Takedown"},
			},
			ReflexDrill: "Practice the Body Fold Takedown – Standing (L14) In combination with Take the Back – Mount (L4) And all variations of the Rear Naked Choke – Back Mount (L5)",
			FightSimSteps: []string{
				"Clinch – Standing – Aggressive Opponent (L7)",
				"Body Fold Takedown – Standing (L14)",
				"Positional Control – Side Mount – Guard Prevention (L13)",
				"Take the Back – Mount (L4)",
				"Punch Block Series – Guard – Stages 1-2-1 (L8)",
				"Triangle Choke – Guard – Giant Killer Variation (L10)",
			},
			Parents:  []string{"m-l7", "st-l15"},
			Children: []string{"m-l3"},
		},
		{
			ID: "st-l15", LessonNumber: 15, Name: "Clinch (Conservative)", Category: CategoryStanding, DrillGroup: 4,
			Variations: []Variation{
				{ID: "v1", Name: "Surprise Entry"},
			},
			ReflexDrill: "Practice the Clinch (Conservative Opponent) – Standing (L15) In combination with the Body Fold Takedown – Standing (L14)",
			FightSimSteps: []string{
				"Clinch – Standing – Conservative Opponent (L15)",
				"Leg Hook Takedown – Standing (L6)",
				"Take the Back – Mount – Remount Technique (L4)",
				"Straight Armlock – Mount – Side Variation (L9)",
				"Punch Block Series – Guard – Stages 1-4-1 (L8)",
				"Triangle Choke – Guard – Stage 1.5 Variation (L10)",
			},
			Children: []string{"m-l6", "st-l14"},
		},
	}
}

func init() {
	c = buildCatalog(seedTechniques())
}
