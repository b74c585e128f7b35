// Package pathway turns personal year numbers into a year-by-year life plan.
package pathway

import "github.com/Veraticus/lifepath/internal/model"

// fallbackNumber is the plan used for any number missing from the table.
const fallbackNumber = 1

var plans = map[int]model.YearPlan{
	1: {
		Theme: "New Beginnings & Initiative",
		Milestones: []string{
			"Launch one new project or role you have been postponing.",
			"Write down a clear goal for the next nine-year cycle.",
		},
		Habits: []string{
			"Spend the first hour of each week planning your priorities.",
			"Say yes to one unfamiliar opportunity each month.",
		},
	},
	2: {
		Theme: "Partnership & Patience",
		Milestones: []string{
			"Form or strengthen one key professional partnership.",
			"Resolve a long-standing disagreement with someone close.",
		},
		Habits: []string{
			"Schedule a weekly check-in with a partner or mentor.",
			"Practise active listening in every important conversation.",
		},
	},
	3: {
		Theme: "Creativity & Self-Expression",
		Milestones: []string{
			"Publish, present, or share a piece of creative work.",
			"Grow your professional network through events or speaking.",
		},
		Habits: []string{
			"Reserve time each week for creative practice.",
			"Share one idea or lesson publicly every month.",
		},
	},
	4: {
		Theme: "Foundations & Discipline",
		Milestones: []string{
			"Build an emergency fund covering six months of expenses.",
			"Complete a certification or structured course in your field.",
		},
		Habits: []string{
			"Run a weekly financial review.",
			"Keep a consistent daily routine for sleep and work.",
		},
	},
	5: {
		Theme: "Change & Freedom",
		Milestones: []string{
			"Take a trip or experience that broadens your perspective.",
			"Test a career pivot or side venture with low risk.",
		},
		Habits: []string{
			"Try one new skill, place, or habit each month.",
			"Review and drop commitments that no longer serve you.",
		},
	},
	6: {
		Theme: "Home, Family & Responsibility",
		Milestones: []string{
			"Make a home or family decision you have been deferring.",
			"Take on a mentoring or community care role.",
		},
		Habits: []string{
			"Protect regular, undistracted time with family and friends.",
			"Check in on your health with a yearly preventive visit.",
		},
	},
	7: {
		Theme: "Reflection & Mastery",
		Milestones: []string{
			"Go deep on one subject through study or research.",
			"Take a retreat or sabbatical week to reassess direction.",
		},
		Habits: []string{
			"Keep a daily journal or reflection practice.",
			"Block distraction-free time for deep work.",
		},
	},
	8: {
		Theme: "Achievement & Abundance",
		Milestones: []string{
			"Negotiate a promotion, raise, or major business deal.",
			"Raise your savings or investment rate by five percent.",
		},
		Habits: []string{
			"Track income, spending, and net worth every month.",
			"Delegate work that others can do well.",
		},
	},
	9: {
		Theme: "Completion & Release",
		Milestones: []string{
			"Close out or hand over a project that has run its course.",
			"Give time or money to a cause you care about.",
		},
		Habits: []string{
			"Declutter one area of your life each month.",
			"Reflect on lessons learned before starting anything new.",
		},
	},
	11: {
		Theme: "Illumination & Inspiration",
		Milestones: []string{
			"Act on an intuitive idea with a small, concrete experiment.",
			"Teach or inspire a group through a talk, class, or article.",
		},
		Habits: []string{
			"Meditate or sit quietly for ten minutes a day.",
			"Record insights and ideas as soon as they arrive.",
		},
	},
	22: {
		Theme: "Master Building",
		Milestones: []string{
			"Start a long-horizon project with lasting impact.",
			"Assemble a team or coalition around a shared vision.",
		},
		Habits: []string{
			"Break the big vision into quarterly, measurable goals.",
			"Review progress against the plan every week.",
		},
	},
	33: {
		Theme: "Service & Compassionate Leadership",
		Milestones: []string{
			"Lead an initiative that directly helps others.",
			"Mentor two people through a significant transition.",
		},
		Habits: []string{
			"Offer help to someone every week without being asked.",
			"Set boundaries that keep your care sustainable.",
		},
	},
}

// PlanForPersonalYear returns the theme, milestones, and habits for a
// personal year number. Numbers outside {1..9, 11, 22, 33} get the plan for 1.
// The returned slices are copies and safe to modify.
func PlanForPersonalYear(n int) model.YearPlan {
	plan, ok := plans[n]
	if !ok {
		plan = plans[fallbackNumber]
	}
	return model.YearPlan{
		Theme:      plan.Theme,
		Milestones: append([]string(nil), plan.Milestones...),
		Habits:     append([]string(nil), plan.Habits...),
	}
}
