package reward

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultSweepInterval = 5 * time.Minute
	sweepLockKey         = "loyalty:rewards:expire"
)

// Sweeper 執行一次過期處理
type Sweeper interface {
	Sweep(now time.Time) (int64, error)
}

// Locker 跨實例互斥鎖；多個服務實例時只有取得鎖的實例執行該輪過期處理
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// ExpirySweeper 週期性執行獎勵過期處理
type ExpirySweeper struct {
	sweeper  Sweeper
	locker   Locker // 可為 nil（單實例部署）
	interval time.Duration
	now      func() time.Time
}

// NewExpirySweeper 創建週期任務；interval <= 0 時使用預設值
func NewExpirySweeper(sweeper Sweeper, locker Locker, interval time.Duration) *ExpirySweeper {
	if sweeper == nil {
		return nil
	}
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &ExpirySweeper{
		sweeper:  sweeper,
		locker:   locker,
		interval: interval,
		now:      time.Now,
	}
}

// Start 在背景 goroutine 中啟動週期迴圈，ctx 取消時結束
func (s *ExpirySweeper) Start(ctx context.Context) {
	if s == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	go s.run(ctx)
	log.Infof("reward expiry sweeper started (interval=%s)", s.interval)
}

func (s *ExpirySweeper) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		s.RunOnce(ctx)
		timer := time.NewTimer(s.interval)
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return
		case <-timer.C:
		}
	}
}

// RunOnce 執行一輪；返回轉換筆數（未取得鎖或失敗時為 0）
func (s *ExpirySweeper) RunOnce(ctx context.Context) int64 {
	if s.locker != nil {
		// 鎖的存活時間略短於週期，下一輪一定能重新競爭
		ok, err := s.locker.TryLock(ctx, sweepLockKey, s.interval*9/10)
		if err != nil {
			log.WithError(err).Warn("reward expiry sweeper: lock failed, skipping run")
			return 0
		}
		if !ok {
			log.Debug("reward expiry sweeper: another instance holds the lock")
			return 0
		}
	}

	now := s.now()
	n, err := s.sweeper.Sweep(now)
	if err != nil {
		log.WithError(err).Error("reward expiry sweeper: sweep failed")
		return 0
	}
	if n > 0 {
		log.Infof("reward expiry sweeper: expired %d reward(s) (now=%s)", n, now.Format(time.RFC3339))
	}
	return n
}
