package domain

import "time"

// samplePosts is the fixed fallback content served on reads when no
// database is reachable. It is never mutated; writes against the fallback
// path must fail instead of pretending to persist.
var samplePosts = []Post{
	{
		ID:    1,
		Title: "Welcome to Our Blog",
		Content: `Welcome to our automotive blog! This site runs on a small
content-management backend that keeps serving articles even while its
database is still being provisioned.

## Features
- Responsive reading experience on every device
- Admin panel for content management
- Image upload support
- SEO-friendly structure

## Current Status
This post is sample content shown because the database is not yet
configured. To enable full functionality:

1. Point the server at a Postgres database
2. Configure blob storage for image uploads
3. Run the database setup tool

Once configured, you can create, edit, and delete real posts through the
admin interface.`,
		Excerpt:   "Welcome to our automotive blog. Sample content is shown until the database is configured.",
		ImageURL:  "/images/image10.jpg",
		Category:  "General",
		Published: true,
		CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:    2,
		Title: "Getting Started with Vehicle Diagnostics",
		Content: `Vehicle diagnostics have changed how we maintain and repair
modern automobiles. This guide covers the basics.

## What is Vehicle Diagnostics?
Diagnostics means using specialized tools and software to talk to your
car's onboard computer systems. These systems monitor components and can
flag issues before they become major problems.

## Common Diagnostic Tools
- OBD-II scanners
- Manufacturer-specific diagnostic equipment
- Oscilloscopes for electrical testing
- Pressure gauges for fluid systems

## Benefits
- Early problem detection
- Reduced repair costs
- Improved vehicle performance
- Better fuel efficiency

Regular diagnostic checks save money and keep your vehicle running
smoothly for years.`,
		Excerpt:   "Learn the fundamentals of vehicle diagnostics and how modern tools help maintain your car.",
		ImageURL:  "/images/image11.jpg",
		Category:  "Diagnostics",
		Published: true,
		CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:    3,
		Title: "Understanding Modern Engine Sensors",
		Content: `Modern vehicles rely on dozens of sensors to operate
efficiently. Knowing them helps you diagnose problems and keep performance
optimal.

## Key Engine Sensors

### Oxygen Sensors
Monitor the air-fuel mixture and help optimize combustion efficiency.

### Mass Air Flow (MAF) Sensor
Measures the air entering the engine to determine proper fuel injection.

### Throttle Position Sensor (TPS)
Tracks throttle valve position to control fuel delivery and ignition
timing.

### Coolant Temperature Sensor
Watches engine temperature to prevent overheating.

## Signs of Sensor Problems
- Check engine light activation
- Poor fuel economy
- Rough idling or stalling
- Failed emissions tests

Sensor maintenance is crucial for performance and longevity.`,
		Excerpt:   "Explore the critical sensors in modern engines and how they affect vehicle performance.",
		ImageURL:  "/images/sensors.jpg",
		Category:  "Technology",
		Published: true,
		CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	},
}

// SamplePosts returns a copy of the fallback set, newest first. The copy
// keeps callers from mutating process-wide state.
func SamplePosts() []Post {
	out := make([]Post, len(samplePosts))
	copy(out, samplePosts)
	return out
}

// SamplePostByID looks up a single fallback post by identity.
func SamplePostByID(id int) *Post {
	for i := range samplePosts {
		if samplePosts[i].ID == id {
			p := samplePosts[i]
			return &p
		}
	}
	return nil
}
