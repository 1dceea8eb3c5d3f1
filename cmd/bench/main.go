package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/campaign-ledger/config"
	"github.com/QuangTung97/campaign-ledger/service/ledger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const benchAdvertiser = "bench-advertiser"

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchReserveCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type reserveResult struct {
	duration time.Duration
	reason   string
}

func benchReserve(numSlots int64, numThreads int, numPerThread int) {
	conf := config.Load()

	conn, err := grpc.Dial(conf.Server.GRPC.String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(err)
	}
	defer func() { _ = conn.Close() }()

	client := ledger.NewClient(conn)
	ctx := context.Background()

	created, err := client.CreateCampaign(ctx, &ledger.CreateCampaignRequest{
		AdvertiserID:  benchAdvertiser,
		Title:         "Bench " + time.Now().Format(time.RFC3339),
		TotalSlots:    numSlots,
		RewardPerPost: "10.00",
	})
	if err != nil {
		panic(err)
	}
	campaignID := created.Campaign.ID

	_, err = client.ActivateCampaign(ctx, &ledger.CampaignActionRequest{
		CampaignID: campaignID,
		ActorID:    benchAdvertiser,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println("CAMPAIGN:", campaignID, "SLOTS:", numSlots)

	results := make([][]reserveResult, numThreads)
	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numPerThread; i++ {
				creatorID := fmt.Sprintf("bench-creator-%d-%d", threadIndex, i)
				start := time.Now()
				_, err := client.ReserveSlot(ctx, &ledger.ReserveSlotRequest{
					CampaignID:     campaignID,
					CreatorID:      creatorID,
					Link:           fmt.Sprintf("https://www.youtube.com/watch?v=b%d%d", threadIndex, i),
					IdempotencyKey: uuid.NewString(),
				})
				results[threadIndex] = append(results[threadIndex], reserveResult{
					duration: time.Since(start),
					reason:   errorReason(err),
				})
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	history := make([]time.Duration, 0, numThreads*numPerThread)
	reasons := map[string]int{}
	for _, bucket := range results {
		for _, r := range bucket {
			history = append(history, r.duration)
			reasons[r.reason]++
		}
	}

	printPercentiles(history)
	for reason, count := range reasons {
		fmt.Println("RESULT", reason+":", count)
	}

	list, err := client.ListSubmissions(ctx, &ledger.ListSubmissionsRequest{CampaignID: campaignID})
	if err != nil {
		panic(err)
	}

	reserved := reasons["ok"]
	fmt.Println("SUBMISSIONS:", len(list.Submissions))
	if reserved > int(numSlots) || reserved != len(list.Submissions) {
		fmt.Println("[ERROR] slot count mismatch: reserved", reserved, "slots", numSlots)
	}
}

func errorReason(err error) string {
	if err == nil {
		return "ok"
	}
	st, _ := status.FromError(err)
	return st.Code().String()
}

func printPercentiles(history []time.Duration) {
	if len(history) == 0 {
		return
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	total := time.Duration(0)
	for _, d := range history {
		total += d
	}

	n := len(history)
	fmt.Println("P50:", history[n*50/100])
	fmt.Println("P90:", history[n*90/100])
	fmt.Println("P95:", history[n*95/100])
	fmt.Println("P99:", history[n*99/100])
	fmt.Println("P999:", history[n*999/1000])
	fmt.Println("MAX:", history[n-1])
	fmt.Println("AVG:", total/time.Duration(n))
}

func benchReserveCommand() *cobra.Command {
	var numSlots int64
	var numThreads int
	var numPerThread int

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "many creators race for the slots of one campaign",
		Run: func(cmd *cobra.Command, args []string) {
			benchReserve(numSlots, numThreads, numPerThread)
		},
	}

	cmd.Flags().Int64Var(&numSlots, "slots", 100, "total slots of the campaign")
	cmd.Flags().IntVar(&numThreads, "threads", 50, "number of concurrent clients")
	cmd.Flags().IntVar(&numPerThread, "per-thread", 20, "reservations per client")
	return cmd
}
