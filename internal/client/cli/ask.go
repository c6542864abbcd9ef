package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Ask sends a question to the assistant and prints the answer with the
// documents it was grounded on. The question can be given inline
// ("ask why is the sky blue") or entered at the prompt.
func (a *App) Ask(ctx context.Context, question string) error {
	if question == "" {
		var err error
		question, err = getSimpleText(a.reader, "Enter your question", os.Stdout)
		if err != nil {
			return err
		}
	}

	fmt.Println("Thinking...")

	answer, err := a.queryService.Ask(ctx, question)
	if err != nil {
		log.Printf("Query failed: %v", err)
		return err
	}

	fmt.Println(answer.Answer)
	if len(answer.Sources) > 0 {
		fmt.Println("Sources:")
		for _, src := range answer.Sources {
			fmt.Printf("  - %s\n", src.Name)
		}
	}
	return nil
}
