package recipes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/parakeet-nest/parakeet/completion"
	"github.com/parakeet-nest/parakeet/enums/option"
	pkllm "github.com/parakeet-nest/parakeet/llm"

	"github.com/IPatronD/Recipefinderplatform/internal/types"
)

// StartStreamCmd launches a Parakeet ChatStream for the given prompt and
// emits tokens on out. The full response is delivered on responseCh once the
// stream finishes; closing stopCh cancels the stream.
//
// The stream goroutine is the only writer to out, errCh and responseCh, and
// the only one that closes out and responseCh. Consumers must never close
// these channels; cancellation goes through stopCh alone.
func StartStreamCmd(apiURL, modelName, prompt string, temp float64,
	out chan<- string, errCh chan<- error, stopCh <-chan struct{}, responseCh chan<- string,
) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())

	opts := pkllm.SetOptions(map[string]interface{}{
		string(option.Temperature): temp,
	})

	return func() tea.Msg {
		go func() {
			var fullResponse strings.Builder

			defer func() {
				cancel()

				if r := recover(); r != nil {
					if errCh != nil {
						select {
						case errCh <- fmt.Errorf("stream panic: %v", r):
						default: // Don't block if channel is full
						}
					}
				}

				// Closing the channels we own tells NextTokenCmd and the
				// save command that the stream is over, whatever the reason.
				if responseCh != nil {
					close(responseCh)
				}
				if out != nil {
					close(out)
				}
			}()

			// Map the UI's stop signal onto context cancellation.
			if stopCh != nil {
				go func() {
					select {
					case <-stopCh:
						cancel()
					case <-ctx.Done():
					}
				}()
			}

			q := pkllm.Query{
				Model: modelName,
				Messages: []pkllm.Message{
					{Role: "user", Content: prompt},
				},
				Options: opts,
				Stream:  true,
			}

			safeSend := func(ch chan<- string, data string) bool {
				if ch == nil || ctx.Err() != nil {
					return false
				}
				select {
				case <-ctx.Done():
					return false
				case ch <- data:
					return true
				}
			}

			_, err := completion.ChatStream(apiURL, q, func(ans pkllm.Answer) error {
				select {
				case <-ctx.Done():
					return errors.New("stream canceled")
				default:
				}

				if s := ans.Message.Content; s != "" {
					fullResponse.WriteString(s)
					safeSend(out, s)
				}
				return nil
			})

			if err != nil {
				if errCh != nil {
					select {
					case errCh <- err:
					default:
					}
				}
				return
			}

			if responseCh != nil && ctx.Err() == nil {
				if fullResp := fullResponse.String(); fullResp != "" {
					// responseCh is buffered; the send never blocks.
					responseCh <- fullResp
				}
			}
		}()

		return nil
	}
}

// NextTokenCmd waits for the next token or error/end signal.
func NextTokenCmd(ch <-chan string, errCh <-chan error) tea.Cmd {
	return func() tea.Msg {
		select {
		case err := <-errCh:
			if err != nil {
				return types.StreamErrMsg{Err: err}
			}
			return types.StreamEndMsg{}
		case token, ok := <-ch:
			if !ok {
				// A failed stream closes the token channel right after
				// reporting the error; prefer the error when both are ready.
				if errCh != nil {
					select {
					case err := <-errCh:
						if err != nil {
							return types.StreamErrMsg{Err: err}
						}
					default:
					}
				}
				return types.StreamEndMsg{}
			}
			if token == "" {
				return types.StreamEndMsg{}
			}
			return types.TokenMsg(token)
		}
	}
}
