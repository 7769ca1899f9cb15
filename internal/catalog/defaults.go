package catalog

import "fmt"

var defaultDefinitions = []Definition{
	// Frontend
	{Name: "JavaScript", Category: "Frontend", Level: Intermediate, Resources: []string{"MDN JavaScript Guide", "JavaScript.info", "FreeCodeCamp JavaScript"}},
	{Name: "React", Category: "Frontend", Level: Intermediate, Resources: []string{"React Official Docs", "Epic React", "React Tutorial"}},
	{Name: "HTML", Category: "Frontend", Level: Beginner, Resources: []string{"MDN HTML", "HTML.com Tutorials"}},
	{Name: "CSS", Category: "Frontend", Level: Beginner, Resources: []string{"MDN CSS", "CSS-Tricks", "FreeCodeCamp CSS"}},
	{Name: "TypeScript", Category: "Frontend", Level: Intermediate, Resources: []string{"TypeScript Docs", "TypeScript Deep Dive"}},
	{Name: "Vue", Category: "Frontend", Level: Intermediate, Resources: []string{"Vue.js Guide", "Vue Mastery"}},
	{Name: "Angular", Category: "Frontend", Level: Advanced, Resources: []string{"Angular Docs", "Angular University"}},

	// Backend
	{Name: "Node.js", Category: "Backend", Level: Intermediate, Resources: []string{"Node.js Docs", "The Net Ninja Node.js"}},
	{Name: "Python", Category: "Backend", Level: Intermediate, Resources: []string{"Python Official Docs", "Real Python", "Automate the Boring Stuff"}},
	{Name: "Java", Category: "Backend", Level: Advanced, Resources: []string{"Java Official Docs", "Java Tutorials Point"}},
	{Name: "Express", Category: "Backend", Level: Intermediate, Resources: []string{"Express.js Guide", "Express.js Documentation"}},
	{Name: "Django", Category: "Backend", Level: Advanced, Resources: []string{"Django Docs", "Django for Beginners"}},
	{Name: "Flask", Category: "Backend", Level: Intermediate, Resources: []string{"Flask Documentation", "The Flask Mega-Tutorial"}},
	{Name: "Spring Boot", Category: "Backend", Level: Advanced, Resources: []string{"Spring Boot Guide", "Baeldung Spring"}},
	{Name: "GraphQL", Category: "Backend", Level: Intermediate, Resources: []string{"GraphQL Docs", "How to GraphQL"}},

	// Databases
	{Name: "MongoDB", Category: "Database", Level: Intermediate, Resources: []string{"MongoDB University", "MongoDB Docs"}},
	{Name: "PostgreSQL", Category: "Database", Level: Intermediate, Resources: []string{"PostgreSQL Tutorial", "PostgreSQL Exercises"}},
	{Name: "MySQL", Category: "Database", Level: Intermediate, Resources: []string{"MySQL Tutorial", "MySQL for Beginners"}},
	{Name: "SQL", Category: "Database", Level: Intermediate, Resources: []string{"SQLZoo", "SQL Bolt", "W3Schools SQL"}},

	// DevOps and tools
	{Name: "Git", Category: "Tools", Level: Beginner, Resources: []string{"Git Handbook", "Atlassian Git Tutorials"}},
	{Name: "Docker", Category: "DevOps", Level: Intermediate, Resources: []string{"Docker Getting Started", "Docker Curriculum"}},
	{Name: "Kubernetes", Category: "DevOps", Level: Advanced, Resources: []string{"Kubernetes Docs", "Kubernetes the Hard Way"}},
	{Name: "AWS", Category: "DevOps", Level: Advanced, Resources: []string{"AWS Training", "AWS Docs"}},
	{Name: "REST API", Category: "Backend", Level: Intermediate, Resources: []string{"REST API Tutorial", "MDN REST"}},

	// Methodology
	{Name: "Agile", Category: "Methodology", Level: Beginner, Resources: []string{"Agile Manifesto", "Atlassian Agile"}},
	{Name: "Scrum", Category: "Methodology", Level: Beginner, Resources: []string{"Scrum Guide", "Scrum.org"}},
}

var defaultCatalog = mustNew(defaultDefinitions)

// Default returns the built-in catalog. The same instance is shared by all callers.
func Default() *Catalog {
	return defaultCatalog
}

func mustNew(defs []Definition) *Catalog {
	c, err := New(defs)
	if err != nil {
		panic(fmt.Sprintf("building built-in skill catalog: %s", err))
	}
	return c
}
