package queue

import "strings"

// matchTopic reports whether a dot-separated routing key matches a binding
// pattern, where "*" stands for exactly one word and "#" for zero or more.
func matchTopic(pattern, routingKey string) bool {
	return matchWords(splitWords(pattern), splitWords(routingKey))
}

func splitWords(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, ".")
}

func matchWords(pattern, key []string) bool {
	if len(pattern) == 0 {
		return len(key) == 0
	}

	switch pattern[0] {
	case "#":
		rest := pattern[1:]
		// Collapse consecutive "#" segments.
		for len(rest) > 0 && rest[0] == "#" {
			rest = rest[1:]
		}

		if len(rest) == 0 {
			return true
		}

		for i := 0; i <= len(key); i++ {
			if matchWords(rest, key[i:]) {
				return true
			}
		}

		return false
	case "*":
		return len(key) > 0 && matchWords(pattern[1:], key[1:])
	default:
		return len(key) > 0 && pattern[0] == key[0] && matchWords(pattern[1:], key[1:])
	}
}

func routes(kind ExchangeKind, pattern, routingKey string) bool {
	switch kind {
	case ExchangeFanout:
		return true
	case ExchangeDirect:
		return pattern == routingKey
	case ExchangeTopic:
		return matchTopic(pattern, routingKey)
	default:
		return false
	}
}
