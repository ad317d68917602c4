package question

import (
	"fmt"
	"os"

	"interviewsim/internal/errors"
	"interviewsim/internal/types"

	"gopkg.in/yaml.v3"
)

// Banks holds the prompt pools the generator draws from: one pool per
// category and difficulty, plus the follow-up prompts per category.
type Banks struct {
	Behavioral map[types.Difficulty][]string   `yaml:"behavioral"`
	Technical  map[types.Difficulty][]string   `yaml:"technical"`
	Coding     map[types.Difficulty][]string   `yaml:"coding"`
	FollowUps  map[types.QuestionType][]string `yaml:"followUps"`
}

// DefaultBanks returns the built-in question pools
func DefaultBanks() *Banks {
	return &Banks{
		Behavioral: map[types.Difficulty][]string{
			types.DifficultyEasy: {
				"Tell me about yourself and your background in software development.",
				"Why are you interested in this position?",
				"Describe your ideal work environment.",
				"What motivates you in your work?",
			},
			types.DifficultyMedium: {
				"Tell me about a challenging project you worked on. What made it challenging?",
				"Describe a time when you had to learn a new technology quickly.",
				"How do you handle conflicting priorities and tight deadlines?",
				"Tell me about a time when you disagreed with a team member's approach.",
			},
			types.DifficultyHard: {
				"Describe a time when you had to make a difficult technical decision with limited information.",
				"Tell me about a project where you had to balance technical debt with feature development.",
				"How would you handle a situation where your team is consistently missing deadlines?",
				"Describe a time when you had to advocate for a technical solution that others disagreed with.",
			},
		},
		Technical: map[types.Difficulty][]string{
			types.DifficultyEasy: {
				"What is the difference between == and === in JavaScript?",
				"Explain what REST API is and its main principles.",
				"What is the purpose of version control systems like Git?",
				"Describe the difference between SQL and NoSQL databases.",
			},
			types.DifficultyMedium: {
				"Explain the concept of promises in JavaScript and how they work.",
				"What are microservices and what are their advantages and disadvantages?",
				"How would you optimize a slow database query?",
				"Explain the concept of dependency injection and its benefits.",
			},
			types.DifficultyHard: {
				"Design a distributed caching system for a high-traffic web application.",
				"Explain how you would implement eventual consistency in a distributed system.",
				"How would you design a rate limiting system for an API?",
				"Describe how you would architect a real-time chat application for millions of users.",
			},
		},
		Coding: map[types.Difficulty][]string{
			types.DifficultyEasy: {
				"Write a function to reverse a string without using built-in reverse methods.",
				"Implement a function to check if a number is prime.",
				"Write a function to find the maximum element in an array.",
				"Implement a function to count the frequency of characters in a string.",
			},
			types.DifficultyMedium: {
				"Implement a binary search algorithm.",
				"Write a function to detect if a linked list has a cycle.",
				"Implement a function to find the longest common subsequence of two strings.",
				"Design a data structure that supports insert, delete, and getRandom in O(1) time.",
			},
			types.DifficultyHard: {
				"Implement a thread-safe LRU cache with O(1) operations.",
				"Design and implement a distributed consistent hashing algorithm.",
				"Implement a concurrent merge sort algorithm.",
				"Design a data structure for autocomplete functionality.",
			},
		},
		FollowUps: map[types.QuestionType][]string{
			types.QuestionBehavioral: {
				"Can you elaborate on the specific actions you took?",
				"What was the outcome and what did you learn from this experience?",
				"How would you handle this situation differently now?",
			},
			types.QuestionTechnical: {
				"Can you dive deeper into the implementation details?",
				"What are the potential drawbacks of this approach?",
				"How would you scale this solution for larger systems?",
			},
			types.QuestionCoding: {
				"Can you optimize this solution further?",
				"What's the time and space complexity of your solution?",
				"How would you test this implementation?",
			},
		},
	}
}

// LoadBanksFile reads question pools from a YAML file. Categories or
// difficulties missing from the file keep their built-in defaults.
func LoadBanksFile(path string) (*Banks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeBankLoadFailed,
			fmt.Sprintf("Cannot read question bank file: %s", path), err)
	}

	var loaded Banks
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeBankLoadFailed,
			fmt.Sprintf("Invalid question bank file: %s", path), err)
	}

	banks := DefaultBanks()
	mergeCategory(banks.Behavioral, loaded.Behavioral)
	mergeCategory(banks.Technical, loaded.Technical)
	mergeCategory(banks.Coding, loaded.Coding)
	for qType, prompts := range loaded.FollowUps {
		if len(prompts) > 0 {
			banks.FollowUps[qType] = prompts
		}
	}

	return banks, nil
}

func mergeCategory(dst, src map[types.Difficulty][]string) {
	for difficulty, prompts := range src {
		if len(prompts) > 0 {
			dst[difficulty] = prompts
		}
	}
}

// pool returns the prompt pool for a category and difficulty
func (b *Banks) pool(qType types.QuestionType, difficulty types.Difficulty) []string {
	switch qType {
	case types.QuestionBehavioral:
		return b.Behavioral[difficulty]
	case types.QuestionTechnical:
		return b.Technical[difficulty]
	case types.QuestionCoding:
		return b.Coding[difficulty]
	default:
		return nil
	}
}
